package asset

import (
	"strings"
	"time"

	"civic-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyAssetName        = errs.Mark(errs.New("asset name cannot be empty"), errs.ErrValidation)
	ErrAssetNameTooLong      = errs.Mark(errs.New("asset name is too long (max 255 characters)"), errs.ErrValidation)
	ErrNegativeTotal         = errs.Mark(errs.New("total quantity cannot be negative"), errs.ErrValidation)
	ErrInvalidQuantity       = errs.Mark(errs.New("quantity must be at least 1"), errs.ErrValidation)
	ErrAssetNotFound         = errs.Mark(errs.New("asset not found"), errs.ErrNotFound)
	ErrTotalBelowBorrowed    = errs.Mark(errs.New("total quantity cannot be lower than the quantity currently borrowed"), errs.ErrConflict)
	ErrAssetHasLedgerHistory = errs.Mark(errs.New("asset has borrow history; retire it with status LIQUIDATION instead"), errs.ErrConflict)
	ErrAssetNotLendable      = errs.Mark(errs.New("asset is not in a lendable condition"), errs.ErrAssetUnavailable)
	ErrNotEnoughAvailable    = errs.Mark(errs.New("requested quantity exceeds available stock"), errs.ErrInsufficientStock)
)

const MaxAssetNameLength = 255

type Attributes struct {
	Name          string
	Category      Category
	Description   *string
	TotalQuantity int
	Status        Status
	Location      *string
	Notes         *string
}

type Asset struct {
	id        uuid.UUID
	attrs     Attributes
	createdAt time.Time
	updatedAt time.Time
}

func NewAsset(attrs Attributes, now time.Time) (*Asset, error) {
	if attrs.Status == "" {
		attrs.Status = StatusGood
	}
	normalized, err := validateAttributes(attrs)
	if err != nil {
		return nil, err
	}
	return &Asset{
		id:        uuid.New(),
		attrs:     normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAsset(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Asset {
	return &Asset{
		id:        id,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the attributes. borrowed is the open quantity read under a
// lock on the asset row.
func (a *Asset) Update(attrs Attributes, borrowed int, now time.Time) error {
	if attrs.Status == "" {
		attrs.Status = a.attrs.Status
	}
	normalized, err := validateAttributes(attrs)
	if err != nil {
		return err
	}
	if normalized.TotalQuantity < borrowed {
		return errs.Wrapf(ErrTotalBelowBorrowed, "%d borrowed", borrowed)
	}
	a.attrs = normalized
	a.updatedAt = now
	return nil
}

// Borrow opens a ledger entry for qty items. openQuantity must be read after
// the asset row has been locked.
func (a *Asset) Borrow(req BorrowRequest, openQuantity int, now time.Time) (*BorrowLog, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	// an unlendable asset reports AssetUnavailable whatever the stock
	if !a.attrs.Status.Lendable() {
		return nil, errs.Wrapf(ErrAssetNotLendable, "status %s", a.attrs.Status)
	}
	if available := Available(a.attrs.TotalQuantity, openQuantity); req.Quantity > available {
		return nil, errs.Wrapf(ErrNotEnoughAvailable, "requested %d, available %d", req.Quantity, available)
	}

	return &BorrowLog{
		id:              uuid.New(),
		assetID:         a.id,
		borrowerID:      req.BorrowerID,
		bookingID:       req.BookingID,
		quantity:        req.Quantity,
		borrowedAt:      now,
		status:          LogStatusBorrowed,
		conditionBefore: strings.TrimSpace(req.ConditionBefore),
		notes:           req.Notes,
	}, nil
}

func validateAttributes(attrs Attributes) (Attributes, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.Name == "" {
		return Attributes{}, ErrEmptyAssetName
	}
	if len([]rune(attrs.Name)) > MaxAssetNameLength {
		return Attributes{}, ErrAssetNameTooLong
	}
	category, err := ParseCategory(string(attrs.Category))
	if err != nil {
		return Attributes{}, err
	}
	attrs.Category = category
	status, err := ParseStatus(string(attrs.Status))
	if err != nil {
		return Attributes{}, err
	}
	attrs.Status = status
	if attrs.TotalQuantity < 0 {
		return Attributes{}, ErrNegativeTotal
	}
	return attrs, nil
}

func (a *Asset) ID() uuid.UUID          { return a.id }
func (a *Asset) Attributes() Attributes { return a.attrs }
func (a *Asset) Name() string           { return a.attrs.Name }
func (a *Asset) Category() Category     { return a.attrs.Category }
func (a *Asset) Status() Status         { return a.attrs.Status }
func (a *Asset) TotalQuantity() int     { return a.attrs.TotalQuantity }
func (a *Asset) CreatedAt() time.Time   { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time   { return a.updatedAt }
