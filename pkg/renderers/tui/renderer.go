// Package tui stands in for the game client: it prompts in the terminal for
// every control of a form and renders the raw reply the client would send.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
	"github.com/goliatone/go-dynforms/pkg/render"
)

var nullReply = []byte("null")

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver   PromptDriver
	theme    Theme
	pageSize int
}

// New constructs a TUI renderer backed by survey prompts on stdout.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(nil)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports application/json, the encoding of the reply.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts for a reply and returns it as JSON. Aborting any prompt
// produces "null", the close reply.
func (r *Renderer) Render(ctx context.Context, form forms.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if form == nil {
		return nil, errors.New("tui: form is required")
	}

	reply, err := r.collect(ctx, form, opts)
	if errors.Is(err, ErrAborted) {
		return nullReply, nil
	}
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(reply)
	if err != nil {
		return nil, fmt.Errorf("tui: encode reply: %w", err)
	}
	return out, nil
}

func (r *Renderer) collect(ctx context.Context, form forms.Form, opts render.RenderOptions) (any, error) {
	if err := r.info(ctx, r.theme.InfoPrefix+form.Title()); err != nil {
		return nil, err
	}
	for _, message := range opts.Errors[""] {
		if err := r.info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	switch f := form.(type) {
	case *forms.CustomForm:
		if err := f.Err(); err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		return r.promptCustom(ctx, f, opts)
	case *forms.SimpleForm:
		if err := f.Err(); err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		return r.promptSimple(ctx, f)
	case *forms.ModalForm:
		return r.promptModal(ctx, f)
	default:
		return nil, fmt.Errorf("tui: unsupported form %T", form)
	}
}

func (r *Renderer) promptCustom(ctx context.Context, form *forms.CustomForm, opts render.RenderOptions) ([]any, error) {
	fields := form.Fields()
	reply := make([]any, 0, len(fields))
	for _, field := range fields {
		for _, message := range opts.Errors[field.Key.String()] {
			if err := r.info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Text, message)); err != nil {
				return nil, err
			}
		}
		value, err := r.promptField(ctx, field)
		if err != nil {
			return nil, err
		}
		reply = append(reply, value)
	}
	return reply, nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field) (any, error) {
	switch field.Kind {
	case model.KindLabel:
		return nil, r.info(ctx, r.theme.InfoPrefix+field.Text)
	case model.KindToggle:
		def, _ := field.Default.(bool)
		return r.driver.Confirm(ctx, ConfirmConfig{Message: field.Text, Default: def})
	case model.KindSlider:
		return r.promptSlider(ctx, field)
	case model.KindStepSlider, model.KindDropdown:
		def, ok := model.AsInt(field.Default)
		if !ok {
			def = 0
		}
		return r.promptChoice(ctx, field.Text, field.Options, def)
	case model.KindInput:
		def, _ := field.Default.(string)
		help := ""
		if field.Placeholder != "" {
			help = "e.g. " + field.Placeholder
		}
		return r.driver.Input(ctx, InputConfig{Message: field.Text, Default: def, Help: help})
	default:
		return nil, fmt.Errorf("tui: field %s has unknown kind %q", field.Key, field.Kind)
	}
}

func (r *Renderer) promptSlider(ctx context.Context, field model.Field) (float64, error) {
	defaultStr := ""
	if n, ok := model.AsNumber(field.Default); ok {
		defaultStr = formatNumber(n)
	}
	help := fmt.Sprintf("a number between %s and %s", formatNumber(field.Min), formatNumber(field.Max))

	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: field.Text,
			Default: defaultStr,
			Help:    help,
			Validator: func(value string) error {
				_, err := parseSlider(field, value, help)
				return err
			},
		})
		if err != nil {
			return 0, err
		}
		n, err := parseSlider(field, input, help)
		if err != nil {
			_ = r.info(ctx, fmt.Sprintf("%sInvalid %s: %v", r.theme.ErrorPrefix, field.Text, err))
			continue
		}
		return n, nil
	}
}

func parseSlider(field model.Field, input, help string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if !field.Accepts(n) {
		return 0, fmt.Errorf("must be %s", help)
	}
	return n, nil
}

func (r *Renderer) promptSimple(ctx context.Context, form *forms.SimpleForm) (int, error) {
	if content := form.Content(); content != "" {
		if err := r.info(ctx, content); err != nil {
			return 0, err
		}
	}
	buttons := form.Buttons()
	if len(buttons) == 0 {
		// nothing to press; the only possible reply is a close
		return 0, ErrAborted
	}
	labels := make([]string, len(buttons))
	for i, button := range buttons {
		labels[i] = button.Text
	}
	return r.promptChoice(ctx, form.Title(), labels, 0)
}

func (r *Renderer) promptModal(ctx context.Context, form *forms.ModalForm) (bool, error) {
	if content := form.Content(); content != "" {
		if err := r.info(ctx, content); err != nil {
			return false, err
		}
	}
	idx, err := r.promptChoice(ctx, form.Title(), []string{form.TrueButtonLabel(), form.FalseButtonLabel()}, 0)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

func (r *Renderer) promptChoice(ctx context.Context, message string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("tui: %q has no choices", message)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: def,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("tui: selection %d out of range for %q", idx, message)
	}
	return idx, nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

var _ render.Renderer = (*Renderer)(nil)
