package payload_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/render"
	"github.com/goliatone/go-dynforms/pkg/renderers/payload"
	"github.com/goliatone/go-dynforms/pkg/testsupport"
)

func settingsForm() *forms.CustomForm {
	return forms.NewCustomForm("Settings").
		AddLabel("Adjust your preferences").
		AddToggle("Sound", forms.WithKey("sound"), forms.WithDefault(true)).
		AddSlider("Volume", 0, 100, forms.WithKey("volume"), forms.WithStep(5), forms.WithDefault(50)).
		AddStepSlider("Difficulty", []string{"Peaceful", "Easy", "Hard"}, forms.WithDefault(1)).
		AddDropdown("Language", []string{"English", "Deutsch"}, forms.WithKey("language")).
		AddInput("Nickname", forms.WithPlaceholder("Steve"))
}

func TestRender_MatchesGolden(t *testing.T) {
	r := payload.New(payload.WithIndent(true))
	out, err := r.Render(context.Background(), settingsForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	const golden = "testdata/settings.golden.json"
	if testsupport.WriteMaybeGolden(t, golden, out) {
		return
	}
	want := testsupport.MustDecodeJSON(t, testsupport.MustReadGolden(t, golden))
	got := testsupport.MustDecodeJSON(t, out)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), "\n  ") {
		t.Fatalf("expected indented output, got %s", out)
	}
}

func TestRender_Compact(t *testing.T) {
	r := payload.New()
	if r.Name() != "payload" || r.ContentType() != "application/json" {
		t.Fatalf("unexpected renderer identity %q %q", r.Name(), r.ContentType())
	}
	out, err := r.Render(context.Background(), forms.NewModalForm("Quit"), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"type": "modal", "title": "Quit", "content": "", "button1": "", "button2": ""}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Errors(t *testing.T) {
	r := payload.New()
	broken := forms.NewCustomForm("x").AddSlider("bad", 5, 1)
	if _, err := r.Render(context.Background(), broken, render.RenderOptions{}); err == nil {
		t.Fatalf("expected inconsistent form to fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, settingsForm(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancelled context to fail")
	}
}
