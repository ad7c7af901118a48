package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	selects      []SelectConfig
	inputCfgs    []InputConfig
	inputPos     int
	selectPos    int
	confirmPos   int
	abortSelect  bool
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.abortSelect {
		return 0, ErrAborted
	}
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newTestRenderer(t *testing.T, driver PromptDriver) *Renderer {
	t.Helper()
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRender_CustomFormReply(t *testing.T) {
	driver := &stubDriver{
		confirm:   []bool{true},
		inputs:    []string{"abc", "42", "7", "Steve"},
		selectIdx: []int{1, 2},
	}
	form := forms.NewCustomForm("Settings").
		AddLabel("Audio").
		AddToggle("Music").
		AddSlider("Volume", 0, 10).
		AddStepSlider("Quality", []string{"low", "high"}).
		AddDropdown("Map", []string{"a", "b", "c"}).
		AddInput("Name")

	out, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(`[null,true,7,1,2,"Steve"]`, string(out)); diff != "" {
		t.Fatalf("reply mismatch (-want +got):\n%s", diff)
	}
	// "abc" and "42" are rejected before "7" is accepted
	if driver.inputPos != 4 {
		t.Fatalf("expected 4 inputs consumed, got %d", driver.inputPos)
	}
	if len(driver.infoMessages) != 4 {
		t.Fatalf("expected title, label and two validation messages, got %v", driver.infoMessages)
	}

	// the reply the simulator produces must decode against the same form
	raw, err := forms.ParseResponse(out)
	if err != nil {
		t.Fatalf("parse reply: %v", err)
	}
	if _, err := form.Decode(raw); err != nil {
		t.Fatalf("decode simulated reply: %v", err)
	}
}

func TestRender_SimpleFormSelectsIndex(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	form := forms.NewSimpleForm("Menu").SetContent("Pick").AddButton("Shop").AddButton("Quit")

	out, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "1" {
		t.Fatalf("got %s", out)
	}
	if diff := cmp.Diff([]string{"Shop", "Quit"}, driver.selects[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ModalFormMapsButtons(t *testing.T) {
	cases := []struct {
		name   string
		choice int
		want   string
	}{
		{name: "first button", choice: 0, want: "true"},
		{name: "second button", choice: 1, want: "false"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			driver := &stubDriver{selectIdx: []int{tc.choice}}
			form := forms.NewModalForm("Sure?").SetTrueButtonLabel("Yes").SetFalseButtonLabel("No")
			out, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if string(out) != tc.want {
				t.Fatalf("got %s, want %s", out, tc.want)
			}
		})
	}
}

func TestRender_AbortProducesNull(t *testing.T) {
	driver := &stubDriver{abortSelect: true}
	form := forms.NewSimpleForm("Menu").AddButton("Shop")

	out, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("got %s", out)
	}
}

func TestRender_ShowsPreviousErrors(t *testing.T) {
	driver := &stubDriver{confirm: []bool{false}}
	form := forms.NewCustomForm("Settings").AddToggle("Music", forms.WithKey("music"))

	_, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{
		Errors: map[string][]string{
			"":      {"try again"},
			"music": {"bad value"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{"Settings", "try again", "Music: bad value"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_BrokenFormFails(t *testing.T) {
	form := forms.NewCustomForm("Broken").AddSlider("Bad", 5, 1)
	if _, err := newTestRenderer(t, &stubDriver{}).Render(context.Background(), form, render.RenderOptions{}); err == nil {
		t.Fatalf("expected construction error")
	}
}

func TestRender_SliderInputCarriesRangeValidator(t *testing.T) {
	driver := &stubDriver{inputs: []string{"3"}}
	form := forms.NewCustomForm("Settings").AddSlider("Volume", 0, 10, forms.WithDefault(5))

	out, err := newTestRenderer(t, driver).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "[3]" {
		t.Fatalf("unexpected reply %s", out)
	}
	if len(driver.inputCfgs) != 1 {
		t.Fatalf("expected one input prompt, got %d", len(driver.inputCfgs))
	}
	cfg := driver.inputCfgs[0]
	if cfg.Default != "5" {
		t.Fatalf("expected default 5, got %q", cfg.Default)
	}
	if cfg.Validator == nil {
		t.Fatalf("expected slider prompt to carry a validator")
	}
	for _, bad := range []string{"42", "-1", "abc", ""} {
		if err := cfg.Validator(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
	for _, good := range []string{"7", " 0 ", "10", "2.5"} {
		if err := cfg.Validator(good); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", good, err)
		}
	}
}
