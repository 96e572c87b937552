package memuow

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/infra"
	"civic-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

// Read stores answer from committed state only and report missing rows the
// way the PostgreSQL read stores do, as infra.KindNotFound.

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// newerFirst orders by (created_at, id) descending.
func newerFirst(at1 time.Time, id1 uuid.UUID, at2 time.Time, id2 uuid.UUID) int {
	if c := at2.Compare(at1); c != 0 {
		return c
	}
	return bytes.Compare(id2[:], id1[:])
}

func before(at time.Time, id uuid.UUID, afterAt *time.Time, afterID *uuid.UUID) bool {
	if afterAt == nil || afterID == nil {
		return true
	}
	if !at.Equal(*afterAt) {
		return at.Before(*afterAt)
	}
	return bytes.Compare(id[:], afterID[:]) < 0
}

func truncate[T any](rows []T, limit int32) []T {
	if limit > 0 && len(rows) > int(limit) {
		return rows[:limit]
	}
	return rows
}

func containsFold(s *string, sub string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
}

func (s *Store) ResourceReadStore() queries.ResourceReadStore   { return resourceReads{s} }
func (s *Store) BookingReadStore() queries.BookingReadStore     { return bookingReads{s} }
func (s *Store) AssetReadStore() queries.AssetReadStore         { return assetReads{s} }
func (s *Store) RequestReadStore() queries.RequestReadStore     { return requestReads{s} }
func (s *Store) HouseholdReadStore() queries.HouseholdReadStore { return householdReads{s} }
func (s *Store) NotificationReadStore() queries.NotificationReadStore {
	return notificationReads{s}
}

type resourceReads struct{ s *Store }

func (r resourceReads) FindByID(_ context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	res, ok := r.s.read().resources[id]
	if !ok {
		return nil, notFound("resource not found")
	}
	return &queries.ResourceView{
		ID:          res.ID(),
		Name:        res.Name(),
		Building:    res.Building().String(),
		Floor:       res.Floor(),
		Room:        res.Room(),
		Capacity:    res.Capacity(),
		Description: res.Description(),
		CreatedAt:   res.CreatedAt(),
		UpdatedAt:   res.UpdatedAt(),
	}, nil
}

func (r resourceReads) List(ctx context.Context, filter queries.ResourceFilter) ([]*queries.ResourceView, error) {
	var out []*queries.ResourceView
	for id, res := range r.s.read().resources {
		if filter.Building != nil && res.Building().String() != *filter.Building {
			continue
		}
		if filter.IDs != nil && !slices.Contains(filter.IDs, id) {
			continue
		}
		v, _ := r.FindByID(ctx, id)
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *queries.ResourceView) int {
		if c := strings.Compare(a.Building, b.Building); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

type bookingReads struct{ s *Store }

func (r bookingReads) view(st *state, b *booking.Booking) *queries.BookingView {
	v := &queries.BookingView{
		ID:                    b.ID(),
		ResourceID:            b.ResourceID(),
		RequesterID:           b.RequesterID(),
		Title:                 b.Title(),
		Description:           b.Details().Description,
		Purpose:               b.Details().Purpose,
		StartTime:             b.Window().Start(),
		EndTime:               b.Window().End(),
		Visibility:            b.Visibility().String(),
		Status:                b.Status().String(),
		CleaningCommitment:    b.Details().CleaningCommitment,
		HandoverBeforeChecked: b.Handover().BeforeChecked,
		HandoverAfterChecked:  b.Handover().AfterChecked,
		HandoverNotes:         b.Handover().Notes,
		CreatedAt:             b.CreatedAt(),
		UpdatedAt:             b.UpdatedAt(),
	}
	if res, ok := st.resources[b.ResourceID()]; ok {
		v.ResourceName = res.Name()
		v.ResourceBuilding = res.Building().String()
	}
	return v
}

func (r bookingReads) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	st := r.s.read()
	b, ok := st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return r.view(st, b), nil
}

func (r bookingReads) List(_ context.Context, p queries.BookingListParams) ([]*queries.BookingView, error) {
	st := r.s.read()
	var out []*queries.BookingView
	for _, b := range st.bookings {
		switch {
		case p.Status != nil && b.Status().String() != *p.Status:
			continue
		case p.ResourceID != nil && b.ResourceID() != *p.ResourceID:
			continue
		case p.RequesterID != nil && b.RequesterID() != *p.RequesterID:
			continue
		case !p.IncludePrivate && b.IsPrivate() && b.RequesterID() != p.ViewerID:
			continue
		case !before(b.CreatedAt(), b.ID(), p.AfterCreatedAt, p.AfterID):
			continue
		}
		out = append(out, r.view(st, b))
	}
	slices.SortFunc(out, func(a, b *queries.BookingView) int {
		return newerFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return truncate(out, p.Limit), nil
}

func (r bookingReads) ListApprovedInRange(_ context.Context, resourceIDs []uuid.UUID, start, end time.Time) ([]*queries.CalendarBooking, error) {
	var out []*queries.CalendarBooking
	for _, b := range r.s.read().bookings {
		if b.Status() != approval.StatusApproved || !slices.Contains(resourceIDs, b.ResourceID()) {
			continue
		}
		if !(b.Window().Start().Before(end) && b.Window().End().After(start)) {
			continue
		}
		out = append(out, &queries.CalendarBooking{
			ID:          b.ID(),
			ResourceID:  b.ResourceID(),
			RequesterID: b.RequesterID(),
			Title:       b.Title(),
			Visibility:  b.Visibility().String(),
			StartTime:   b.Window().Start(),
			EndTime:     b.Window().End(),
		})
	}
	slices.SortFunc(out, func(a, b *queries.CalendarBooking) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out, nil
}

type assetReads struct{ s *Store }

func (r assetReads) FindByID(_ context.Context, id uuid.UUID) (*queries.AssetView, error) {
	st := r.s.read()
	a, ok := st.assets[id]
	if !ok {
		return nil, notFound("asset not found")
	}
	attrs := a.Attributes()
	return &queries.AssetView{
		ID:               a.ID(),
		Name:             attrs.Name,
		Category:         attrs.Category.String(),
		Description:      attrs.Description,
		TotalQuantity:    attrs.TotalQuantity,
		BorrowedQuantity: openQuantity(st, id),
		Status:           attrs.Status.String(),
		Location:         attrs.Location,
		Notes:            attrs.Notes,
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}, nil
}

func (r assetReads) List(ctx context.Context, filter queries.AssetFilter) ([]*queries.AssetView, error) {
	var out []*queries.AssetView
	for id, a := range r.s.read().assets {
		attrs := a.Attributes()
		switch {
		case filter.Category != nil && attrs.Category.String() != *filter.Category:
			continue
		case filter.Status != nil && attrs.Status.String() != *filter.Status:
			continue
		case filter.Search != nil && !containsFold(&attrs.Name, *filter.Search) && !containsFold(attrs.Description, *filter.Search):
			continue
		}
		v, _ := r.FindByID(ctx, id)
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *queries.AssetView) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

func (r assetReads) FindBorrowLogByID(_ context.Context, id uuid.UUID) (*queries.BorrowLogView, error) {
	st := r.s.read()
	l, ok := st.logs[id]
	if !ok {
		return nil, notFound("borrow log not found")
	}
	return borrowLogView(st, l.ID()), nil
}

func (r assetReads) ListBorrowLogs(_ context.Context, filter queries.BorrowLogFilter) ([]*queries.BorrowLogView, error) {
	st := r.s.read()
	var out []*queries.BorrowLogView
	for id, l := range st.logs {
		switch {
		case filter.BorrowerID != nil && l.BorrowerID() != *filter.BorrowerID:
			continue
		case filter.AssetID != nil && l.AssetID() != *filter.AssetID:
			continue
		case filter.Status != nil && l.Status().String() != *filter.Status:
			continue
		}
		out = append(out, borrowLogView(st, id))
	}
	slices.SortFunc(out, func(a, b *queries.BorrowLogView) int {
		return newerFirst(a.BorrowedAt, a.ID, b.BorrowedAt, b.ID)
	})
	return truncate(out, filter.Limit), nil
}

func borrowLogView(st *state, id uuid.UUID) *queries.BorrowLogView {
	l := st.logs[id]
	v := &queries.BorrowLogView{
		ID:              l.ID(),
		AssetID:         l.AssetID(),
		BorrowerID:      l.BorrowerID(),
		BookingID:       l.BookingID(),
		Quantity:        l.Quantity(),
		BorrowedAt:      l.BorrowedAt(),
		ReturnedAt:      l.ReturnedAt(),
		Status:          l.Status().String(),
		ConditionBefore: l.ConditionBefore(),
		ConditionAfter:  l.ConditionAfter(),
		Notes:           l.Notes(),
	}
	if a, ok := st.assets[l.AssetID()]; ok {
		v.AssetName = a.Name()
	}
	return v
}

type requestReads struct{ s *Store }

func (r requestReads) view(st *state, id uuid.UUID) *queries.RequestView {
	cr := st.requests[id]
	v := &queries.RequestView{
		ID:          cr.ID(),
		Type:        cr.Type().String(),
		RequesterID: cr.RequesterID(),
		HouseholdID: cr.HouseholdID(),
		Description: cr.Description(),
		Payload:     cr.Payload(),
		Status:      cr.Status().String(),
		DecidedBy:   cr.DecidedBy(),
		DecidedAt:   cr.DecidedAt(),
		CreatedAt:   cr.CreatedAt(),
		UpdatedAt:   cr.UpdatedAt(),
	}
	if cr.HouseholdID() != nil {
		if h, ok := st.households[*cr.HouseholdID()]; ok {
			code := h.Code()
			v.HouseholdCode = &code
		}
	}
	return v
}

func (r requestReads) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	st := r.s.read()
	if _, ok := st.requests[id]; !ok {
		return nil, notFound("change request not found")
	}
	return r.view(st, id), nil
}

func (r requestReads) List(_ context.Context, p queries.RequestListParams) ([]*queries.RequestView, error) {
	st := r.s.read()
	var out []*queries.RequestView
	for id, cr := range st.requests {
		switch {
		case p.Status != nil && cr.Status().String() != *p.Status:
			continue
		case p.Type != nil && cr.Type().String() != *p.Type:
			continue
		case p.RequesterID != nil && cr.RequesterID() != *p.RequesterID:
			continue
		case !before(cr.CreatedAt(), cr.ID(), p.AfterCreatedAt, p.AfterID):
			continue
		}
		out = append(out, r.view(st, id))
	}
	slices.SortFunc(out, func(a, b *queries.RequestView) int {
		return newerFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return truncate(out, p.Limit), nil
}

type householdReads struct{ s *Store }

func (r householdReads) view(st *state, id uuid.UUID) *queries.HouseholdView {
	h := st.households[id]
	v := &queries.HouseholdView{
		ID:        h.ID(),
		Code:      h.Code(),
		Address:   h.Address(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
	for _, p := range st.persons {
		if p.HouseholdID() == id {
			v.PersonCount++
		}
	}
	for _, hid := range st.members {
		if hid == id {
			v.MemberCount++
		}
	}
	return v
}

func (r householdReads) FindByID(_ context.Context, id uuid.UUID) (*queries.HouseholdView, error) {
	st := r.s.read()
	if _, ok := st.households[id]; !ok {
		return nil, notFound("household not found")
	}
	return r.view(st, id), nil
}

func (r householdReads) FindByMember(ctx context.Context, userID uuid.UUID) (*queries.HouseholdView, error) {
	hid, ok := r.s.read().members[userID]
	if !ok {
		return nil, notFound("user has no household")
	}
	return r.FindByID(ctx, hid)
}

func (r householdReads) List(_ context.Context, search *string) ([]*queries.HouseholdView, error) {
	st := r.s.read()
	var out []*queries.HouseholdView
	for id, h := range st.households {
		code, address := h.Code(), h.Address()
		if search != nil && !containsFold(&code, *search) && !containsFold(&address, *search) {
			continue
		}
		out = append(out, r.view(st, id))
	}
	slices.SortFunc(out, func(a, b *queries.HouseholdView) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out, nil
}

func (r householdReads) ListPersons(_ context.Context, householdID uuid.UUID) ([]*queries.PersonView, error) {
	var out []*queries.PersonView
	for _, p := range r.s.read().persons {
		if p.HouseholdID() != householdID {
			continue
		}
		attrs := p.Attributes()
		out = append(out, &queries.PersonView{
			ID:           p.ID(),
			HouseholdID:  p.HouseholdID(),
			FullName:     attrs.FullName,
			DateOfBirth:  attrs.DateOfBirth,
			Gender:       attrs.Gender,
			IDNumber:     attrs.IDNumber,
			Relationship: attrs.Relationship,
			CreatedAt:    p.CreatedAt(),
		})
	}
	slices.SortFunc(out, func(a, b *queries.PersonView) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

type notificationReads struct{ s *Store }

func (r notificationReads) List(_ context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	var out []*queries.NotificationView
	for _, n := range r.s.read().notifications {
		if n.RecipientID() != recipientID || (unreadOnly && n.IsRead()) {
			continue
		}
		out = append(out, &queries.NotificationView{
			ID:        n.ID(),
			Title:     n.Title(),
			Message:   n.Message(),
			IsRead:    n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}
	slices.SortFunc(out, func(a, b *queries.NotificationView) int {
		return newerFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	return truncate(out, limit), nil
}

func (r notificationReads) CountUnread(_ context.Context, recipientID uuid.UUID) (int, error) {
	n := 0
	for _, item := range r.s.read().notifications {
		if item.RecipientID() == recipientID && !item.IsRead() {
			n++
		}
	}
	return n, nil
}
