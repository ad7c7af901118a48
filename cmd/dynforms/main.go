package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-dynforms/internal/config"
	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/orchestrator"
	"github.com/goliatone/go-dynforms/pkg/render"
	"github.com/goliatone/go-dynforms/pkg/renderers/payload"
	"github.com/goliatone/go-dynforms/pkg/renderers/text"
	"github.com/goliatone/go-dynforms/pkg/renderers/tui"
)

const actor = "cli"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	flags := flag.NewFlagSet("dynforms", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("dir", cfg.Dir, "directory holding form definition files")
	formID := flags.String("form", "", "form id to render")
	rendererName := flags.String("renderer", cfg.Renderer, "renderer to use (payload, text, tui)")
	response := flags.String("response", "", "client reply (JSON) to decode against the form")
	list := flags.Bool("list", false, "list available form ids and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	registry, err := newRegistry()
	if err != nil {
		logger.Error("init renderers", slog.Any("error", err))
		return 1
	}
	gen := orchestrator.New(
		orchestrator.WithDefinitionsFS(os.DirFS(*dir)),
		orchestrator.WithRegistry(registry),
	)

	if *list {
		if err := gen.Err(); err != nil {
			logger.Error("load definitions", slog.String("dir", *dir), slog.Any("error", err))
			return 1
		}
		for _, id := range gen.Store().IDs() {
			fmt.Fprintln(stdout, id)
		}
		return 0
	}

	if *formID == "" {
		fmt.Fprintln(stderr, "dynforms: -form is required")
		flags.Usage()
		return 2
	}

	target := gen.RendererName(*rendererName)
	form, output, err := gen.Generate(ctx, orchestrator.Request{FormID: *formID, Renderer: target})
	if err != nil {
		logger.Error("generate form", slog.String("form", *formID), slog.Any("error", err))
		return 1
	}

	var reply []byte
	switch {
	case *response != "":
		fmt.Fprintln(stdout, string(output))
		reply = []byte(*response)
	case target == "tui":
		reply = output
	default:
		fmt.Fprintln(stdout, string(output))
		return 0
	}

	logger.Debug("client reply", slog.String("form", *formID), slog.String("reply", string(reply)))
	dispatcher := forms.NewDispatcher(forms.WithLogger[string](logger))
	dialog := forms.Bind[string](form, printHandler(stdout))
	if err := dispatcher.DispatchJSON(ctx, dialog, actor, reply); err != nil {
		reportRejection(ctx, gen, form, stderr, err)
		return 1
	}
	return 0
}

func newRegistry() (*render.Registry, error) {
	textRenderer, err := text.New()
	if err != nil {
		return nil, err
	}
	tuiRenderer, err := tui.New(tui.WithTheme(tui.Theme{InfoPrefix: "» ", ErrorPrefix: "! "}))
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(payload.New(payload.WithIndent(true)), textRenderer, tuiRenderer)
}

func printHandler(out io.Writer) forms.Handler[string] {
	return forms.HandlerFuncs[string]{
		OnResponseFunc: func(_ context.Context, actor string, result any) error {
			encoded, err := json.Marshal(result)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s responded: %s\n", actor, encoded)
			return err
		},
		OnCloseFunc: func(_ context.Context, actor string) error {
			_, err := fmt.Fprintf(out, "%s closed the dialog\n", actor)
			return err
		},
	}
}

// reportRejection prints the text preview annotated with the decode errors.
func reportRejection(ctx context.Context, gen *orchestrator.Orchestrator, form forms.Form, out io.Writer, err error) {
	if !forms.IsRejected(err) && !errors.Is(err, forms.ErrMalformedResponse) {
		fmt.Fprintf(out, "dynforms: %v\n", err)
		return
	}
	mapping := render.MapDecodeError(err)
	preview, renderErr := gen.Render(ctx, form, "text", render.RenderOptions{Errors: mapping.Options()})
	if renderErr != nil {
		fmt.Fprintf(out, "dynforms: %v\n", err)
		return
	}
	fmt.Fprint(out, string(preview))
}
