package converter

import (
	"civic-hub/internal/domain/asset"
	sqlc "civic-hub/internal/infra/sqlc/generated"
	"civic-hub/internal/pkg/pgconv"
)

func AssetToCreateParams(a *asset.Asset) sqlc.CreateAssetParams {
	attrs := a.Attributes()
	return sqlc.CreateAssetParams{
		ID:            a.ID(),
		Name:          attrs.Name,
		Category:      attrs.Category.String(),
		Description:   pgconv.StringPtrToPgtype(attrs.Description),
		TotalQuantity: toInt32(attrs.TotalQuantity),
		Status:        attrs.Status.String(),
		Location:      pgconv.StringPtrToPgtype(attrs.Location),
		Notes:         pgconv.StringPtrToPgtype(attrs.Notes),
		CreatedAt:     pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AssetToUpdateParams(a *asset.Asset) sqlc.UpdateAssetParams {
	attrs := a.Attributes()
	return sqlc.UpdateAssetParams{
		ID:            a.ID(),
		Name:          attrs.Name,
		Category:      attrs.Category.String(),
		Description:   pgconv.StringPtrToPgtype(attrs.Description),
		TotalQuantity: toInt32(attrs.TotalQuantity),
		Status:        attrs.Status.String(),
		Location:      pgconv.StringPtrToPgtype(attrs.Location),
		Notes:         pgconv.StringPtrToPgtype(attrs.Notes),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AssetFromRow(row sqlc.Assets) *asset.Asset {
	attrs := asset.Attributes{
		Name:          row.Name,
		Category:      asset.Category(row.Category),
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		TotalQuantity: int(row.TotalQuantity),
		Status:        asset.Status(row.Status),
		Location:      pgconv.StringPtrFromPgtype(row.Location),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
	}
	return asset.ReconstructAsset(row.ID, attrs, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func BorrowLogToCreateParams(l *asset.BorrowLog) sqlc.CreateBorrowLogParams {
	return sqlc.CreateBorrowLogParams{
		ID:              l.ID(),
		AssetID:         l.AssetID(),
		BorrowerID:      l.BorrowerID(),
		BookingID:       pgconv.UUIDPtrToPgtype(l.BookingID()),
		Quantity:        toInt32(l.Quantity()),
		BorrowedAt:      pgconv.TimeToPgtype(l.BorrowedAt()),
		ReturnedAt:      pgconv.TimePtrToPgtype(l.ReturnedAt()),
		Status:          l.Status().String(),
		ConditionBefore: l.ConditionBefore(),
		ConditionAfter:  pgconv.StringPtrToPgtype(l.ConditionAfter()),
		Notes:           pgconv.StringPtrToPgtype(l.Notes()),
	}
}

func BorrowLogToReturnParams(l *asset.BorrowLog) sqlc.UpdateBorrowLogReturnParams {
	return sqlc.UpdateBorrowLogReturnParams{
		ID:             l.ID(),
		ReturnedAt:     pgconv.TimePtrToPgtype(l.ReturnedAt()),
		Status:         l.Status().String(),
		ConditionAfter: pgconv.StringPtrToPgtype(l.ConditionAfter()),
		Notes:          pgconv.StringPtrToPgtype(l.Notes()),
	}
}

func BorrowLogFromRow(row sqlc.BorrowLogs) *asset.BorrowLog {
	return asset.ReconstructBorrowLog(
		row.ID, row.AssetID, row.BorrowerID,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		int(row.Quantity),
		pgconv.TimeFromPgtype(row.BorrowedAt),
		pgconv.TimePtrFromPgtype(row.ReturnedAt),
		asset.LogStatus(row.Status),
		row.ConditionBefore,
		pgconv.StringPtrFromPgtype(row.ConditionAfter),
		pgconv.StringPtrFromPgtype(row.Notes),
	)
}
