// Package command dispatches chat text to the first handler that recognizes
// it and evaluates the resulting command against a shared Randomizer.
package command

import (
	"context"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/result"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/width"
)

const tracerName = "github.com/louisbranch/dicebot/internal/core/command"

// Command is a recognized command ready to be evaluated.
// Evaluate must draw only through d so evaluations stay deterministic for a
// fixed sequence of draws. Dispatcher.Eval runs Evaluate inside
// Randomizer.Do; callers evaluating directly against a shared Randomizer
// must do the same or concurrent evaluations interleave their draws.
type Command interface {
	Evaluate(d random.Drawer) result.Result
}

// Handler recognizes one command grammar.
// TryMatch reports false for text it does not recognize; it never fails.
type Handler interface {
	Name() string
	TryMatch(text string) (Command, bool)
}

// Dispatcher tries handlers in order; the first match wins.
type Dispatcher struct {
	handlers []Handler
	rng      *random.Randomizer
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = tracer
	}
}

// NewDispatcher returns a dispatcher drawing from rng.
func NewDispatcher(rng *random.Randomizer, handlers []Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: append([]Handler(nil), handlers...),
		rng:      rng,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	return d
}

// Handlers returns the handler names in dispatch order.
func (d *Dispatcher) Handlers() []string {
	names := make([]string, len(d.handlers))
	for i, h := range d.handlers {
		names[i] = h.Name()
	}
	return names
}

// Match returns the first handler recognizing text and its command.
func (d *Dispatcher) Match(text string) (Handler, Command, bool) {
	text = Normalize(text)
	if text == "" {
		return nil, nil, false
	}
	for _, h := range d.handlers {
		if cmd, ok := h.TryMatch(text); ok {
			return h, cmd, true
		}
	}
	return nil, nil, false
}

// Eval recognizes and evaluates text. It reports false when no handler
// recognizes the text; the caller decides whether to say so.
//
// All draws of one evaluation happen under the Randomizer lock.
func (d *Dispatcher) Eval(ctx context.Context, text string) (result.Result, bool) {
	ctx, span := d.tracer.Start(ctx, "command.Eval")
	defer span.End()

	h, cmd, ok := d.Match(text)
	if !ok {
		span.SetAttributes(attribute.Bool("dicebot.recognized", false))
		d.logger.Debug().Str("text", text).Msg("command not recognized")
		return result.Result{}, false
	}

	var res result.Result
	d.rng.Do(func(draws random.Drawer) {
		res = cmd.Evaluate(draws)
	})

	span.SetAttributes(
		attribute.Bool("dicebot.recognized", true),
		attribute.String("dicebot.handler", h.Name()),
		attribute.Bool("dicebot.secret", res.Secret),
	)
	event := d.logger.Debug().Ctx(ctx).Str("handler", h.Name()).Bool("secret", res.Secret)
	if !res.Secret {
		event = event.Str("result", res.Text)
	}
	event.Msg("command evaluated")
	return res, true
}

// Normalize trims text and folds full-width ASCII to its narrow form, so
// "ｃｈｏｉｃｅ［Ａ，Ｂ］" is read as "choice[A,B]".
func Normalize(text string) string {
	return strings.TrimSpace(width.Fold.String(text))
}
