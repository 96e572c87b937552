package workflow

import (
	"context"

	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/pkg/clock"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

// Handler applies an approved change request inside the deciding transaction.
// household is the request's household, nil when the requester had none.
type Handler interface {
	Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, household *uuid.UUID) error
}

type HandlerFunc func(ctx context.Context, tx shared.Tx, payload changerequest.Payload, household *uuid.UUID) error

func (f HandlerFunc) Apply(ctx context.Context, tx shared.Tx, payload changerequest.Payload, household *uuid.UUID) error {
	return f(ctx, tx, payload, household)
}

type Registry struct {
	handlers map[changerequest.Type]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[changerequest.Type]Handler)}
}

// NewDefaultRegistry wires one handler per request type.
func NewDefaultRegistry(clk clock.Clock) *Registry {
	r := NewRegistry()
	r.Register(changerequest.TypeHouseholdUpdate, &householdUpdateHandler{clock: clk})
	r.Register(changerequest.TypeAddPerson, &addPersonHandler{clock: clk})
	r.Register(changerequest.TypeRemovePerson, &removePersonHandler{})
	r.Register(changerequest.TypeCulturalCenterBooking, &culturalCenterBookingHandler{clock: clk})
	return r
}

func (r *Registry) Register(t changerequest.Type, h Handler) {
	r.handlers[t] = h
}

func (r *Registry) Lookup(t changerequest.Type) (Handler, error) {
	h, ok := r.handlers[t]
	if !ok {
		return nil, errs.Wrapf(changerequest.ErrUnknownType, "no handler registered for %q", t)
	}
	return h, nil
}

// Has reports whether submit should accept requests of type t.
func (r *Registry) Has(t changerequest.Type) bool {
	_, ok := r.handlers[t]
	return ok
}
