package asset

import (
	"strings"

	"civic-hub/internal/pkg/errs"
)

var (
	ErrInvalidCategory  = errs.Mark(errs.New("category must be one of FURNITURE, AUDIO, ELECTRIC, TENT, SPORTS"), errs.ErrValidation)
	ErrInvalidStatus    = errs.Mark(errs.New("asset status must be one of GOOD, BROKEN, MAINTENANCE, LIQUIDATION"), errs.ErrValidation)
	ErrInvalidLogStatus = errs.Mark(errs.New("borrow status must be one of BORROWED, RETURNED, DAMAGED"), errs.ErrValidation)
)

type Category string

const (
	CategoryFurniture Category = "FURNITURE"
	CategoryAudio     Category = "AUDIO"
	CategoryElectric  Category = "ELECTRIC"
	CategoryTent      Category = "TENT"
	CategorySports    Category = "SPORTS"
)

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryFurniture, CategoryAudio, CategoryElectric, CategoryTent, CategorySports:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string { return string(c) }

type Status string

const (
	StatusGood        Status = "GOOD"
	StatusBroken      Status = "BROKEN"
	StatusMaintenance Status = "MAINTENANCE"
	StatusLiquidation Status = "LIQUIDATION"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusGood, StatusBroken, StatusMaintenance, StatusLiquidation:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// Lendable reports whether items in this state may leave the storeroom.
func (s Status) Lendable() bool {
	return s == StatusGood
}

// LogStatus is the state of one ledger entry.
type LogStatus string

const (
	LogStatusBorrowed LogStatus = "BORROWED"
	LogStatusReturned LogStatus = "RETURNED"
	LogStatusDamaged  LogStatus = "DAMAGED"
)

func ParseLogStatus(s string) (LogStatus, error) {
	st := LogStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case LogStatusBorrowed, LogStatusReturned, LogStatusDamaged:
		return st, nil
	default:
		return "", ErrInvalidLogStatus
	}
}

func (s LogStatus) String() string { return string(s) }

func (s LogStatus) IsOpen() bool {
	return s == LogStatusBorrowed
}

// IsDamaged interprets the free-text condition recorded at return.
func IsDamaged(condition string) bool {
	switch strings.ToUpper(strings.TrimSpace(condition)) {
	case "DAMAGED", "BROKEN":
		return true
	default:
		return false
	}
}
