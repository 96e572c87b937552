package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Mark(errs.New("invalid pagination cursor"), errs.ErrValidation)

// Cursor points after the last row of a page ordered by (created_at, id) descending.
type Cursor struct {
	After string `json:"after,omitempty"`
}

type keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Microsecond precision matches timestamptz.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s:%d:%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "not base64url")
	}
	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 || parts[0] != CursorVersionV1 {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "unknown cursor version")
	}
	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "bad timestamp")
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(ErrInvalidCursor, "bad id")
	}
	return time.UnixMicro(micros), id, nil
}

// decodeCursor returns nil for the first page.
func decodeCursor(c *Cursor) (*keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, err
	}
	return &keyset{CreatedAt: t, ID: id}, nil
}

// paginate trims a result fetched with limit+1 rows and returns the cursor
// for the next page, if any.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	t, id := key(rows[limit-1])
	return rows, &Cursor{After: EncodeAfterCursor(t, id)}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
