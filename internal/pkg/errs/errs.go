package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches reference by identity along the wrap chain. Marks are only
// consulted for taxonomy sentinels, so two domain sentinels of one kind
// stay distinct.
func Is(err, reference error) bool {
	if errors.Is(err, reference) {
		return true
	}
	return isTaxonomy(reference) && cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// ExtractStackLines flattens the %+v rendering of err for structured logs,
// dropping blank lines and indentation.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for line := range strings.SplitSeq(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
