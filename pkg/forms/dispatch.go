package forms

import (
	"context"
	"log/slog"
)

// Handler receives the outcome of a dialog. A is the host's actor type, such
// as a player or session.
type Handler[A any] interface {
	// OnResponse receives a successfully decoded reply.
	OnResponse(ctx context.Context, actor A, result any) error
	// OnClose runs when the actor dismissed the dialog without answering.
	OnClose(ctx context.Context, actor A) error
}

// Dialog is a form that also knows how to react to its replies.
type Dialog[A any] interface {
	Form
	Handler[A]
}

// HandlerFuncs adapts plain functions into a Handler. A nil OnCloseFunc
// ignores close events.
type HandlerFuncs[A any] struct {
	OnResponseFunc func(ctx context.Context, actor A, result any) error
	OnCloseFunc    func(ctx context.Context, actor A) error
}

// OnResponse calls OnResponseFunc.
func (h HandlerFuncs[A]) OnResponse(ctx context.Context, actor A, result any) error {
	if h.OnResponseFunc == nil {
		return nil
	}
	return h.OnResponseFunc(ctx, actor, result)
}

// OnClose calls OnCloseFunc.
func (h HandlerFuncs[A]) OnClose(ctx context.Context, actor A) error {
	if h.OnCloseFunc == nil {
		return nil
	}
	return h.OnCloseFunc(ctx, actor)
}

type boundDialog[A any] struct {
	Form
	Handler[A]
}

// Bind pairs a form with a handler.
func Bind[A any](form Form, handler Handler[A]) Dialog[A] {
	return boundDialog[A]{Form: form, Handler: handler}
}

// HandleResponse decodes a raw reply and routes it. A nil reply, or a reply
// that decodes to nil, goes to OnClose; anything else goes to OnResponse.
// Decode errors are returned and no handler runs.
func HandleResponse[A any](ctx context.Context, dialog Dialog[A], actor A, raw any) error {
	if raw == nil {
		return dialog.OnClose(ctx, actor)
	}
	decoded, err := dialog.Decode(raw)
	if err != nil {
		return err
	}
	if decoded == nil {
		return dialog.OnClose(ctx, actor)
	}
	return dialog.OnResponse(ctx, actor, decoded)
}

// HandleResponseJSON parses the client's JSON reply and passes it to
// HandleResponse.
func HandleResponseJSON[A any](ctx context.Context, dialog Dialog[A], actor A, data []byte) error {
	raw, err := ParseResponse(data)
	if err != nil {
		return err
	}
	return HandleResponse(ctx, dialog, actor, raw)
}

// Dispatcher wraps HandleResponse with logging.
type Dispatcher[A any] struct {
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption[A any] func(*Dispatcher[A])

// WithLogger overrides the logger, slog.Default by default.
func WithLogger[A any](logger *slog.Logger) DispatcherOption[A] {
	return func(d *Dispatcher[A]) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher[A any](options ...DispatcherOption[A]) *Dispatcher[A] {
	d := &Dispatcher[A]{logger: slog.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Dispatch routes a raw reply through HandleResponse, logging the outcome.
func (d *Dispatcher[A]) Dispatch(ctx context.Context, dialog Dialog[A], actor A, raw any) error {
	logger := d.logger.With(slog.String("form_type", string(dialog.Type())), slog.String("title", dialog.Title()))
	if raw == nil {
		logger.DebugContext(ctx, "dialog closed")
	}
	err := HandleResponse(ctx, dialog, actor, raw)
	switch {
	case err == nil:
		logger.DebugContext(ctx, "dialog response handled")
	case IsRejected(err):
		logger.WarnContext(ctx, "dialog response rejected", slog.Any("error", err))
	default:
		logger.ErrorContext(ctx, "dialog response failed", slog.Any("error", err))
	}
	return err
}

// DispatchJSON parses the client's JSON reply and dispatches it.
func (d *Dispatcher[A]) DispatchJSON(ctx context.Context, dialog Dialog[A], actor A, data []byte) error {
	raw, err := ParseResponse(data)
	if err != nil {
		d.logger.WarnContext(ctx, "dialog response unreadable", slog.Any("error", err))
		return err
	}
	return d.Dispatch(ctx, dialog, actor, raw)
}
