package booking

import (
	"strings"

	"civic-hub/internal/pkg/errs"
)

var ErrInvalidVisibility = errs.Mark(errs.New("visibility must be PUBLIC or PRIVATE"), errs.ErrValidation)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToUpper(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", ErrInvalidVisibility
	}
	return v, nil
}

func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func (v Visibility) String() string {
	return string(v)
}

const (
	// Business window of a calendar day, [OpenHour:00, CloseHour:00).
	DefaultOpenHour  = 8
	DefaultCloseHour = 22

	MaxTitleLength = 200
)
