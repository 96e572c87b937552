// Package approval holds the pending/approved/rejected state machine shared by
// bookings and change requests.
package approval

import (
	"strings"

	"civic-hub/internal/pkg/errs"
)

var (
	ErrInvalidStatus        = errs.Mark(errs.New("invalid approval status"), errs.ErrValidation)
	ErrInvalidDecision      = errs.Mark(errs.New("decision must be APPROVED or REJECTED"), errs.ErrValidation)
	ErrTransitionNotAllowed = errs.Mark(errs.New("approval status transition not allowed"), errs.ErrInvalidStateTransition)
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

func CanTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition returns to when the move is allowed.
func Transition(from, to Status) (Status, error) {
	if !CanTransition(from, to) {
		return from, errs.Wrapf(ErrTransitionNotAllowed, "%s -> %s", from, to)
	}
	return to, nil
}
