// Package clickhandler turns activations of a control into play requests.
//
// Every activation starts its own request on its own goroutine and hands the
// outcome to exactly one sink: the response text to the success sink, or the
// failure to the error sink. Nothing is retried, timed out, cancelled, or
// deduplicated, and overlapping activations complete in any order.
package clickhandler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hilthontt/playbutton/internal/application/clickhandler"

var (
	ErrNilControl  = errors.New("control must not be nil")
	ErrNilPlayer   = errors.New("player must not be nil")
	ErrPlayerPanic = errors.New("player panicked")
)

// Player performs the outbound request and returns the response as text.
type Player interface {
	Play(ctx context.Context) (string, error)
}

type Handler struct {
	ctx    context.Context
	player Player
	sinks  domain.Sinks
	tracer trace.Tracer

	inflight sync.WaitGroup
}

// New builds a handler without attaching it to a control. ctx carries values
// (trace parents, loggers) into each request; its cancellation is ignored.
func New(ctx context.Context, player Player, sinks domain.Sinks) (*Handler, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	if err := sinks.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		ctx:    context.WithoutCancel(ctx),
		player: player,
		sinks:  sinks,
		tracer: tracing.GetTracer(tracerName),
	}, nil
}

// Bind attaches a new handler to ctl. On error nothing is attached.
func Bind(ctx context.Context, ctl domain.Control, player Player, sinks domain.Sinks) (*Handler, error) {
	if ctl == nil {
		return nil, ErrNilControl
	}

	h, err := New(ctx, player, sinks)
	if err != nil {
		return nil, err
	}

	buttonID := ctl.ID()
	if err := ctl.OnActivate(func(source string) {
		h.Activate(buttonID, source)
	}); err != nil {
		return nil, fmt.Errorf("bind %s: %w", buttonID, err)
	}

	return h, nil
}

// Activate starts one request and returns without waiting for it.
func (h *Handler) Activate(buttonID, source string) domain.Activation {
	a := domain.NewActivation(buttonID, source)

	h.inflight.Add(1)
	go h.run(a)

	return a
}

// Wait blocks until every started request has reached a sink. It does not
// cancel anything.
func (h *Handler) Wait() {
	h.inflight.Wait()
}

func (h *Handler) run(a domain.Activation) {
	defer h.inflight.Done()

	ctx, span := h.tracer.Start(h.ctx, "playbutton.activation",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("activation.id", a.ID.String()),
			attribute.String("activation.source", a.Source),
			attribute.String("button.id", a.ButtonID),
		),
	)
	defer span.End()

	body, err := h.play(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.sinks.Error(a, err)
		return
	}

	span.SetAttributes(attribute.Int("response.size", len(body)))
	h.sinks.Success(a, body)
}

func (h *Handler) play(ctx context.Context) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = ""
			err = fmt.Errorf("%w: %v", ErrPlayerPanic, r)
		}
	}()

	return h.player.Play(ctx)
}
