package queries

import (
	"context"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListKitchensQueryResponse is one page of the tenant's kitchens.
type ListKitchensQueryResponse struct {
	Kitchens   []KitchenQueryResponse
	NextCursor string
}

// ListKitchensQueryHandler retrieves pages of kitchens from the database.
type ListKitchensQueryHandler struct {
	db *gorm.DB
}

// NewListKitchensQueryHandler creates a handler for kitchen listing queries.
// Requires a GORM database connection for query execution.
func NewListKitchensQueryHandler(db *gorm.DB) ListKitchensQueryHandler {
	return ListKitchensQueryHandler{db: db}
}

// Handle executes the listing query over the tenant's kitchen partition.
func (h ListKitchensQueryHandler) Handle(
	ctx context.Context,
	query ListKitchensQuery,
) (ListKitchensQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListKitchensQueryResponse{}, err
	}

	lastKey := ""
	if query.Cursor() != "" {
		cursor, err := kernel.DecodePageCursor(query.Cursor())
		if err != nil {
			return ListKitchensQueryResponse{}, err
		}
		if !cursor.BelongsTo(query.Actor().TenantID()) || cursor.Filter() != "" {
			return ListKitchensQueryResponse{}, errs.NewValueIsInvalidError("cursor")
		}
		lastKey = cursor.LastKey()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			max_cooking,
			current_cooking,
			active,
			created_at,
			updated_at
		FROM kitchens
		WHERE tenant_id = ? AND id > ?
		ORDER BY id
		LIMIT ?
	`, query.Actor().TenantID().String(), lastKey, query.Limit()+1).Rows()
	if err != nil {
		return ListKitchensQueryResponse{}, err
	}
	defer rows.Close()

	response := ListKitchensQueryResponse{Kitchens: make([]KitchenQueryResponse, 0, query.Limit())}
	hasMore := false
	for rows.Next() {
		if len(response.Kitchens) == query.Limit() {
			hasMore = true
			break
		}

		var (
			kitchenResp KitchenQueryResponse
			id          string
			createdAt   time.Time
			updatedAt   time.Time
		)
		if err = rows.Scan(
			&id,
			&kitchenResp.Name,
			&kitchenResp.MaxCooking,
			&kitchenResp.CurrentCooking,
			&kitchenResp.Active,
			&createdAt,
			&updatedAt,
		); err != nil {
			return ListKitchensQueryResponse{}, err
		}

		kitchenID, idErr := kernel.KitchenIDFromString(id)
		if idErr != nil {
			return ListKitchensQueryResponse{}, idErr
		}
		kitchenResp.ID = kitchenID
		kitchenResp.CreatedAt = createdAt.UTC()
		kitchenResp.UpdatedAt = updatedAt.UTC()
		response.Kitchens = append(response.Kitchens, kitchenResp)
	}
	if err = rows.Err(); err != nil {
		return ListKitchensQueryResponse{}, err
	}

	if hasMore {
		last := response.Kitchens[len(response.Kitchens)-1]
		response.NextCursor = kernel.NewPageCursor(
			query.Actor().TenantID(), last.ID.String(), "",
		).Encode()
	}

	return response, nil
}
