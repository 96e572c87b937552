package notification

import (
	"fmt"
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.Mark(errs.New("notification not found"), errs.ErrNotFound)
	ErrEmptyTitle           = errs.Mark(errs.New("notification title cannot be empty"), errs.ErrValidation)
)

// Notification is an in-app inbox entry for one user.
type Notification struct {
	id          uuid.UUID
	recipientID uuid.UUID
	title       string
	message     string
	isRead      bool
	createdAt   time.Time
}

func New(recipientID uuid.UUID, title, message string, now time.Time) (*Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Notification{
		id:          uuid.New(),
		recipientID: recipientID,
		title:       title,
		message:     strings.TrimSpace(message),
		createdAt:   now,
	}, nil
}

func Reconstruct(id, recipientID uuid.UUID, title, message string, isRead bool, createdAt time.Time) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		title:       title,
		message:     message,
		isRead:      isRead,
		createdAt:   createdAt,
	}
}

// BookingDecided builds the message sent to a requester when an administrator
// approves or rejects their booking.
func BookingDecided(recipientID uuid.UUID, title, status string, now time.Time) (*Notification, error) {
	return New(recipientID,
		fmt.Sprintf("Booking %s", strings.ToLower(status)),
		fmt.Sprintf("Your booking %q was %s.", title, strings.ToLower(status)),
		now)
}

// RequestDecided builds the message sent when a change request is decided.
func RequestDecided(recipientID uuid.UUID, requestType, status string, now time.Time) (*Notification, error) {
	return New(recipientID,
		fmt.Sprintf("Request %s", strings.ToLower(status)),
		fmt.Sprintf("Your %s request was %s.", requestType, strings.ToLower(status)),
		now)
}

func (n *Notification) ID() uuid.UUID          { return n.id }
func (n *Notification) RecipientID() uuid.UUID { return n.recipientID }
func (n *Notification) Title() string          { return n.title }
func (n *Notification) Message() string        { return n.message }
func (n *Notification) IsRead() bool           { return n.isRead }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
