package queries

import (
	"context"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuQueryResponse is one page of the tenant's menu.
type GetMenuQueryResponse struct {
	Dishes     []DishQueryResponse
	NextCursor string
}

// GetMenuQueryHandler retrieves pages of menu dishes from the database.
// Availability is a post-fetch predicate like the order listing's
// ownership rule, so the scan stride stays fixed for every caller.
type GetMenuQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetMenuQueryHandler creates a handler for menu listing queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db, policy: policy}
}

// Handle executes the menu listing query.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	seesAll := h.policy.CanManageCatalog(query.Actor())
	filter := ""
	if !seesAll {
		filter = "available"
	}

	lastKey := ""
	if query.Cursor() != "" {
		cursor, err := kernel.DecodePageCursor(query.Cursor())
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		if !cursor.BelongsTo(query.Actor().TenantID()) || cursor.Filter() != filter {
			return GetMenuQueryResponse{}, errs.NewValueIsInvalidError("cursor")
		}
		lastKey = cursor.LastKey()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			available,
			image_url,
			created_at,
			updated_at
		FROM dishes
		WHERE tenant_id = ? AND id > ?
		ORDER BY id
		LIMIT ?
	`, query.Actor().TenantID().String(), lastKey, query.Limit()+1).Rows()
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	defer rows.Close()

	response := GetMenuQueryResponse{Dishes: make([]DishQueryResponse, 0, query.Limit())}
	scanned := 0
	lastID := ""
	hasMore := false
	for rows.Next() {
		if scanned == query.Limit() {
			hasMore = true
			break
		}

		var (
			dishResp  DishQueryResponse
			id        string
			createdAt time.Time
			updatedAt time.Time
		)
		if err = rows.Scan(
			&id,
			&dishResp.Name,
			&dishResp.Description,
			&dishResp.Price,
			&dishResp.Available,
			&dishResp.ImageURL,
			&createdAt,
			&updatedAt,
		); err != nil {
			return GetMenuQueryResponse{}, err
		}
		scanned++
		lastID = id

		if !dishResp.Available && !seesAll {
			continue
		}

		dishID, idErr := kernel.DishIDFromString(id)
		if idErr != nil {
			return GetMenuQueryResponse{}, idErr
		}
		dishResp.ID = dishID
		dishResp.CreatedAt = createdAt.UTC()
		dishResp.UpdatedAt = updatedAt.UTC()
		response.Dishes = append(response.Dishes, dishResp)
	}
	if err = rows.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	if hasMore {
		response.NextCursor = kernel.NewPageCursor(
			query.Actor().TenantID(), lastID, filter,
		).Encode()
	}

	return response, nil
}
