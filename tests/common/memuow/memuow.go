// Package memuow is an in-memory shared.UnitOfWork for use-case tests.
//
// Every Within call works on a deep copy of the committed state and swaps it
// in only when fn returns nil, so a failed transaction leaves no trace.
// Transactions are serialized, which stands in for the row locks the
// PostgreSQL implementation takes.
package memuow

import (
	"context"
	"maps"
	"sync"
	"time"

	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/asset"
	"civic-hub/internal/domain/booking"
	"civic-hub/internal/domain/changerequest"
	"civic-hub/internal/domain/household"
	"civic-hub/internal/domain/notification"
	"civic-hub/internal/domain/resource"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/errs"
	"civic-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	resources     map[uuid.UUID]*resource.Resource
	bookings      map[uuid.UUID]*booking.Booking
	assets        map[uuid.UUID]*asset.Asset
	logs          map[uuid.UUID]*asset.BorrowLog
	requests      map[uuid.UUID]*changerequest.ChangeRequest
	households    map[uuid.UUID]*household.Household
	members       map[uuid.UUID]uuid.UUID // user id -> household id
	persons       map[uuid.UUID]*household.Person
	notifications map[uuid.UUID]*notification.Notification
}

func newState() *state {
	return &state{
		resources:     map[uuid.UUID]*resource.Resource{},
		bookings:      map[uuid.UUID]*booking.Booking{},
		assets:        map[uuid.UUID]*asset.Asset{},
		logs:          map[uuid.UUID]*asset.BorrowLog{},
		requests:      map[uuid.UUID]*changerequest.ChangeRequest{},
		households:    map[uuid.UUID]*household.Household{},
		members:       map[uuid.UUID]uuid.UUID{},
		persons:       map[uuid.UUID]*household.Person{},
		notifications: map[uuid.UUID]*notification.Notification{},
	}
}

func cloneAll[T any](m map[uuid.UUID]*T) map[uuid.UUID]*T {
	out := make(map[uuid.UUID]*T, len(m))
	for k, v := range m {
		out[k] = clone(v)
	}
	return out
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func (s *state) copy() *state {
	return &state{
		resources:     cloneAll(s.resources),
		bookings:      cloneAll(s.bookings),
		assets:        cloneAll(s.assets),
		logs:          cloneAll(s.logs),
		requests:      cloneAll(s.requests),
		households:    cloneAll(s.households),
		members:       maps.Clone(s.members),
		persons:       cloneAll(s.persons),
		notifications: cloneAll(s.notifications),
	}
}

type Store struct {
	mu        sync.RWMutex
	committed *state
	commits   int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{committed: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.committed.copy()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.committed = work
	s.commits++
	return nil
}

// Commits counts successful transactions.
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

// Seed helpers bypass the use cases so tests can set up fixtures directly.

func (s *Store) SeedResource(r *resource.Resource) {
	s.seed(func(st *state) { st.resources[r.ID()] = clone(r) })
}

func (s *Store) SeedBooking(b *booking.Booking) {
	s.seed(func(st *state) { st.bookings[b.ID()] = clone(b) })
}

func (s *Store) SeedAsset(a *asset.Asset) {
	s.seed(func(st *state) { st.assets[a.ID()] = clone(a) })
}

func (s *Store) SeedHousehold(h *household.Household, memberIDs ...uuid.UUID) {
	s.seed(func(st *state) {
		st.households[h.ID()] = clone(h)
		for _, id := range memberIDs {
			st.members[id] = h.ID()
		}
	})
}

func (s *Store) SeedPerson(p *household.Person) {
	s.seed(func(st *state) { st.persons[p.ID()] = clone(p) })
}

func (s *Store) seed(fn func(*state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.committed)
}

// Snapshot accessors return copies of committed rows.

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	return lookup(s.read().bookings, id)
}

func (s *Store) Asset(id uuid.UUID) (*asset.Asset, bool) {
	return lookup(s.read().assets, id)
}

func (s *Store) BorrowLog(id uuid.UUID) (*asset.BorrowLog, bool) {
	return lookup(s.read().logs, id)
}

func (s *Store) Request(id uuid.UUID) (*changerequest.ChangeRequest, bool) {
	return lookup(s.read().requests, id)
}

func (s *Store) Household(id uuid.UUID) (*household.Household, bool) {
	return lookup(s.read().households, id)
}

func (s *Store) Persons(householdID uuid.UUID) []*household.Person {
	var out []*household.Person
	for _, p := range s.read().persons {
		if p.HouseholdID() == householdID {
			out = append(out, clone(p))
		}
	}
	return out
}

func (s *Store) Notifications(recipientID uuid.UUID) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range s.read().notifications {
		if n.RecipientID() == recipientID {
			out = append(out, clone(n))
		}
	}
	return out
}

func (s *Store) BorrowLogs(assetID uuid.UUID) []*asset.BorrowLog {
	var out []*asset.BorrowLog
	for _, l := range s.read().logs {
		if l.AssetID() == assetID {
			out = append(out, clone(l))
		}
	}
	return out
}

func lookup[T any](m map[uuid.UUID]*T, id uuid.UUID) (*T, bool) {
	v, ok := m[id]
	if !ok {
		return nil, false
	}
	return clone(v), true
}

type memTx struct {
	st *state
}

func (t *memTx) Resources() shared.ResourceRepository           { return resourceRepo{t.st} }
func (t *memTx) Bookings() shared.BookingRepository             { return bookingRepo{t.st} }
func (t *memTx) Assets() shared.AssetRepository                 { return assetRepo{t.st} }
func (t *memTx) BorrowLogs() shared.BorrowLogRepository         { return borrowLogRepo{t.st} }
func (t *memTx) ChangeRequests() shared.ChangeRequestRepository { return requestRepo{t.st} }
func (t *memTx) Households() shared.HouseholdRepository         { return householdRepo{t.st} }
func (t *memTx) Notifications() shared.NotificationRepository   { return notificationRepo{t.st} }
func (t *memTx) DB() sqlc.DBTX                                  { return nil }

type resourceRepo struct{ st *state }

func (r resourceRepo) Create(_ context.Context, _ sqlc.DBTX, res *resource.Resource) error {
	r.st.resources[res.ID()] = clone(res)
	return nil
}

func (r resourceRepo) Update(_ context.Context, _ sqlc.DBTX, res *resource.Resource) error {
	if _, ok := r.st.resources[res.ID()]; !ok {
		return resource.ErrResourceNotFound
	}
	r.st.resources[res.ID()] = clone(res)
	return nil
}

// Delete cascades to bookings like the foreign key does.
func (r resourceRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.st.resources[id]; !ok {
		return resource.ErrResourceNotFound
	}
	delete(r.st.resources, id)
	for bid, b := range r.st.bookings {
		if b.ResourceID() == id {
			delete(r.st.bookings, bid)
		}
	}
	return nil
}

func (r resourceRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	v, ok := lookup(r.st.resources, id)
	if !ok {
		return nil, resource.ErrResourceNotFound
	}
	return v, nil
}

func (r resourceRepo) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	return r.FindByID(ctx, tx, id)
}

type bookingRepo struct{ st *state }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.st.resources[b.ResourceID()]; !ok {
		return resource.ErrResourceNotFound
	}
	if err := r.checkExclusion(b); err != nil {
		return err
	}
	r.st.bookings[b.ID()] = clone(b)
	return nil
}

func (r bookingRepo) Update(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; !ok {
		return booking.ErrBookingNotFound
	}
	if err := r.checkExclusion(b); err != nil {
		return err
	}
	r.st.bookings[b.ID()] = clone(b)
	return nil
}

// checkExclusion mirrors bookings_no_approved_overlap.
func (r bookingRepo) checkExclusion(b *booking.Booking) error {
	if b.Status() != approval.StatusApproved {
		return nil
	}
	for _, other := range r.st.bookings {
		if other.ID() == b.ID() || other.ResourceID() != b.ResourceID() || other.Status() != approval.StatusApproved {
			continue
		}
		if other.Window().Overlaps(b.Window()) {
			return errs.Wrap(booking.ErrBookingConflict, "exclusion constraint")
		}
	}
	return nil
}

// Delete detaches borrow logs like ON DELETE SET NULL.
func (r bookingRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.st.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	delete(r.st.bookings, id)
	for lid, l := range r.st.logs {
		if l.BookingID() != nil && *l.BookingID() == id {
			r.st.logs[lid] = asset.ReconstructBorrowLog(
				l.ID(), l.AssetID(), l.BorrowerID(), nil, l.Quantity(), l.BorrowedAt(), l.ReturnedAt(),
				l.Status(), l.ConditionBefore(), l.ConditionAfter(), l.Notes(),
			)
		}
	}
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	v, ok := lookup(r.st.bookings, id)
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return v, nil
}

func (r bookingRepo) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, tx, id)
}

func (r bookingRepo) ListApprovedOverlapping(_ context.Context, _ sqlc.DBTX, resourceID uuid.UUID, window booking.Window) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.st.bookings {
		if b.ResourceID() == resourceID && b.Status() == approval.StatusApproved && b.Window().Overlaps(window) {
			out = append(out, clone(b))
		}
	}
	return out, nil
}

func (r bookingRepo) CountActiveByResource(_ context.Context, _ sqlc.DBTX, resourceID uuid.UUID, now time.Time) (int, error) {
	n := 0
	for _, b := range r.st.bookings {
		if b.ResourceID() != resourceID || b.Status() == approval.StatusRejected {
			continue
		}
		if b.Window().End().After(now) {
			n++
		}
	}
	return n, nil
}

type assetRepo struct{ st *state }

func (r assetRepo) Create(_ context.Context, _ sqlc.DBTX, a *asset.Asset) error {
	r.st.assets[a.ID()] = clone(a)
	return nil
}

func (r assetRepo) Update(_ context.Context, _ sqlc.DBTX, a *asset.Asset) error {
	if _, ok := r.st.assets[a.ID()]; !ok {
		return asset.ErrAssetNotFound
	}
	r.st.assets[a.ID()] = clone(a)
	return nil
}

// Delete is restricted while borrow logs reference the asset.
func (r assetRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.st.assets[id]; !ok {
		return asset.ErrAssetNotFound
	}
	for _, l := range r.st.logs {
		if l.AssetID() == id {
			return asset.ErrAssetHasLedgerHistory
		}
	}
	delete(r.st.assets, id)
	return nil
}

func (r assetRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*asset.Asset, error) {
	v, ok := lookup(r.st.assets, id)
	if !ok {
		return nil, asset.ErrAssetNotFound
	}
	return v, nil
}

func (r assetRepo) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*asset.Asset, error) {
	return r.FindByID(ctx, tx, id)
}

type borrowLogRepo struct{ st *state }

func (r borrowLogRepo) Create(_ context.Context, _ sqlc.DBTX, l *asset.BorrowLog) error {
	if _, ok := r.st.assets[l.AssetID()]; !ok {
		return asset.ErrAssetNotFound
	}
	if l.BookingID() != nil {
		if _, ok := r.st.bookings[*l.BookingID()]; !ok {
			return booking.ErrBookingNotFound
		}
	}
	r.st.logs[l.ID()] = clone(l)
	return nil
}

func (r borrowLogRepo) UpdateReturn(_ context.Context, _ sqlc.DBTX, l *asset.BorrowLog) error {
	if _, ok := r.st.logs[l.ID()]; !ok {
		return asset.ErrBorrowLogNotFound
	}
	r.st.logs[l.ID()] = clone(l)
	return nil
}

func (r borrowLogRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*asset.BorrowLog, error) {
	v, ok := lookup(r.st.logs, id)
	if !ok {
		return nil, asset.ErrBorrowLogNotFound
	}
	return v, nil
}

func (r borrowLogRepo) SumOpenQuantity(_ context.Context, _ sqlc.DBTX, assetID uuid.UUID) (int, error) {
	return openQuantity(r.st, assetID), nil
}

func (r borrowLogRepo) CountByAsset(_ context.Context, _ sqlc.DBTX, assetID uuid.UUID) (int, error) {
	n := 0
	for _, l := range r.st.logs {
		if l.AssetID() == assetID {
			n++
		}
	}
	return n, nil
}

func openQuantity(st *state, assetID uuid.UUID) int {
	sum := 0
	for _, l := range st.logs {
		if l.AssetID() == assetID && l.Status().IsOpen() {
			sum += l.Quantity()
		}
	}
	return sum
}

type requestRepo struct{ st *state }

func (r requestRepo) Create(_ context.Context, _ sqlc.DBTX, cr *changerequest.ChangeRequest) error {
	r.st.requests[cr.ID()] = clone(cr)
	return nil
}

func (r requestRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*changerequest.ChangeRequest, error) {
	v, ok := lookup(r.st.requests, id)
	if !ok {
		return nil, changerequest.ErrRequestNotFound
	}
	return v, nil
}

func (r requestRepo) UpdateDecision(_ context.Context, _ sqlc.DBTX, cr *changerequest.ChangeRequest) error {
	if _, ok := r.st.requests[cr.ID()]; !ok {
		return changerequest.ErrRequestNotFound
	}
	r.st.requests[cr.ID()] = clone(cr)
	return nil
}

type householdRepo struct{ st *state }

func (r householdRepo) Create(_ context.Context, _ sqlc.DBTX, h *household.Household) error {
	if r.codeTaken(h.Code(), h.ID()) {
		return household.ErrDuplicateCode
	}
	r.st.households[h.ID()] = clone(h)
	return nil
}

func (r householdRepo) codeTaken(code string, self uuid.UUID) bool {
	for _, other := range r.st.households {
		if other.ID() != self && other.Code() == code {
			return true
		}
	}
	return false
}

func (r householdRepo) AddMember(_ context.Context, _ sqlc.DBTX, userID, householdID uuid.UUID, _ time.Time) error {
	if _, ok := r.st.households[householdID]; !ok {
		return household.ErrHouseholdNotFound
	}
	if _, ok := r.st.members[userID]; ok {
		return household.ErrAlreadyMember
	}
	r.st.members[userID] = householdID
	return nil
}

func (r householdRepo) FindByMember(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*household.Household, error) {
	hid, ok := r.st.members[userID]
	if !ok {
		return nil, household.ErrNoMembership
	}
	v, ok := lookup(r.st.households, hid)
	if !ok {
		return nil, household.ErrNoMembership
	}
	return v, nil
}

func (r householdRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*household.Household, error) {
	v, ok := lookup(r.st.households, id)
	if !ok {
		return nil, household.ErrHouseholdNotFound
	}
	return v, nil
}

func (r householdRepo) Update(_ context.Context, _ sqlc.DBTX, h *household.Household) error {
	if _, ok := r.st.households[h.ID()]; !ok {
		return household.ErrHouseholdNotFound
	}
	if r.codeTaken(h.Code(), h.ID()) {
		return household.ErrDuplicateCode
	}
	r.st.households[h.ID()] = clone(h)
	return nil
}

func (r householdRepo) CreatePerson(_ context.Context, _ sqlc.DBTX, p *household.Person) error {
	if _, ok := r.st.households[p.HouseholdID()]; !ok {
		return household.ErrHouseholdNotFound
	}
	if id := p.Attributes().IDNumber; id != nil {
		for _, other := range r.st.persons {
			if other.Attributes().IDNumber != nil && *other.Attributes().IDNumber == *id {
				return household.ErrDuplicateIDNumber
			}
		}
	}
	r.st.persons[p.ID()] = clone(p)
	return nil
}

func (r householdRepo) FindPerson(_ context.Context, _ sqlc.DBTX, householdID, personID uuid.UUID) (*household.Person, error) {
	p, ok := r.st.persons[personID]
	if !ok || p.HouseholdID() != householdID {
		return nil, household.ErrPersonNotFound
	}
	return clone(p), nil
}

func (r householdRepo) DeletePerson(_ context.Context, _ sqlc.DBTX, personID uuid.UUID) error {
	if _, ok := r.st.persons[personID]; !ok {
		return household.ErrPersonNotFound
	}
	delete(r.st.persons, personID)
	return nil
}

type notificationRepo struct{ st *state }

func (r notificationRepo) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	r.st.notifications[n.ID()] = clone(n)
	return nil
}

func (r notificationRepo) MarkRead(_ context.Context, _ sqlc.DBTX, id, recipientID uuid.UUID) error {
	n, ok := r.st.notifications[id]
	if !ok || n.RecipientID() != recipientID {
		return notification.ErrNotificationNotFound
	}
	r.st.notifications[id] = markRead(n)
	return nil
}

func (r notificationRepo) MarkAllRead(_ context.Context, _ sqlc.DBTX, recipientID uuid.UUID) (int64, error) {
	var n int64
	for id, item := range r.st.notifications {
		if item.RecipientID() == recipientID && !item.IsRead() {
			r.st.notifications[id] = markRead(item)
			n++
		}
	}
	return n, nil
}

func markRead(n *notification.Notification) *notification.Notification {
	return notification.Reconstruct(n.ID(), n.RecipientID(), n.Title(), n.Message(), true, n.CreatedAt())
}
