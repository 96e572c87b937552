package converter

import (
	"civic-hub/internal/domain/approval"
	"civic-hub/internal/domain/booking"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	d := b.Details()
	h := b.Handover()
	return sqlc.CreateBookingParams{
		ID:                    b.ID(),
		ResourceID:            b.ResourceID(),
		RequesterID:           b.RequesterID(),
		Title:                 d.Title,
		Description:           pgconv.StringPtrToPgtype(d.Description),
		Purpose:               d.Purpose,
		StartTime:             pgconv.TimeToPgtype(b.Window().Start()),
		EndTime:               pgconv.TimeToPgtype(b.Window().End()),
		Visibility:            d.Visibility.String(),
		Status:                b.Status().String(),
		CleaningCommitment:    d.CleaningCommitment,
		HandoverBeforeChecked: h.BeforeChecked,
		HandoverAfterChecked:  h.AfterChecked,
		HandoverNotes:         pgconv.StringPtrToPgtype(h.Notes),
		CreatedAt:             pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	d := b.Details()
	h := b.Handover()
	return sqlc.UpdateBookingParams{
		ID:                    b.ID(),
		Title:                 d.Title,
		Description:           pgconv.StringPtrToPgtype(d.Description),
		Purpose:               d.Purpose,
		StartTime:             pgconv.TimeToPgtype(b.Window().Start()),
		EndTime:               pgconv.TimeToPgtype(b.Window().End()),
		Visibility:            d.Visibility.String(),
		Status:                b.Status().String(),
		CleaningCommitment:    d.CleaningCommitment,
		HandoverBeforeChecked: h.BeforeChecked,
		HandoverAfterChecked:  h.AfterChecked,
		HandoverNotes:         pgconv.StringPtrToPgtype(h.Notes),
		UpdatedAt:             pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow trusts stored rows; the table constraints already
// guarantee start < end and a known status.
func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	window, _ := booking.NewWindow(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	details := booking.Details{
		Title:              row.Title,
		Description:        pgconv.StringPtrFromPgtype(row.Description),
		Purpose:            row.Purpose,
		Visibility:         booking.Visibility(row.Visibility),
		CleaningCommitment: row.CleaningCommitment,
	}
	handover := booking.Handover{
		BeforeChecked: row.HandoverBeforeChecked,
		AfterChecked:  row.HandoverAfterChecked,
		Notes:         pgconv.StringPtrFromPgtype(row.HandoverNotes),
	}
	return booking.ReconstructBooking(
		row.ID, row.ResourceID, row.RequesterID,
		details,
		window,
		approval.Status(row.Status),
		handover,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
