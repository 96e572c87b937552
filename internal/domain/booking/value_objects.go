package booking

import (
	"time"

	"civic-hub/internal/pkg/errs"
)

var (
	ErrInvalidWindow        = errs.Mark(errs.New("booking start must be before its end"), errs.ErrValidation)
	ErrStartInPast          = errs.Mark(errs.New("booking cannot start in the past"), errs.ErrValidation)
	ErrOutsideBusinessHours = errs.Mark(errs.New("booking must fall within business hours of a single day"), errs.ErrValidation)
)

// Window is the half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps uses half-open comparison, so adjacent windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w Window) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

// BusinessHours is the daily window in which rooms can be booked, and the
// grid the calendar is rendered on.
type BusinessHours struct {
	Location  *time.Location
	OpenHour  int
	CloseHour int
	Enforce   bool
}

func NewBusinessHours(loc *time.Location, enforce bool) BusinessHours {
	if loc == nil {
		loc = time.UTC
	}
	return BusinessHours{
		Location:  loc,
		OpenHour:  DefaultOpenHour,
		CloseHour: DefaultCloseHour,
		Enforce:   enforce,
	}
}

func (b BusinessHours) location() *time.Location {
	if b.Location == nil {
		return time.UTC
	}
	return b.Location
}

// Day returns the business window of the calendar day containing t.
func (b BusinessHours) Day(t time.Time) Window {
	loc := b.location()
	local := t.In(loc)
	y, m, d := local.Date()
	return Window{
		start: time.Date(y, m, d, b.OpenHour, 0, 0, 0, loc),
		end:   time.Date(y, m, d, b.CloseHour, 0, 0, 0, loc),
	}
}

func (b BusinessHours) Validate(w Window) error {
	if !b.Enforce {
		return nil
	}
	day := b.Day(w.start)
	if w.start.Before(day.start) || w.end.After(day.end) {
		return ErrOutsideBusinessHours
	}
	return nil
}

// HourSlots splits the business window of the day into one-hour buckets.
func (b BusinessHours) HourSlots(day time.Time) []Window {
	loc := b.location()
	local := day.In(loc)
	y, m, d := local.Date()

	slots := make([]Window, 0, b.CloseHour-b.OpenHour)
	for h := b.OpenHour; h < b.CloseHour; h++ {
		slots = append(slots, Window{
			start: time.Date(y, m, d, h, 0, 0, 0, loc),
			end:   time.Date(y, m, d, h+1, 0, 0, 0, loc),
		})
	}
	return slots
}
