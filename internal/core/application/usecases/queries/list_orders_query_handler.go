package queries

import (
	"context"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"
	"resto/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryResponse is one page of a listing. NextCursor is empty
// when the scan is exhausted; otherwise the caller passes it back
// unmodified to resume.
type ListOrdersQueryResponse struct {
	Orders     []OrderQueryResponse
	NextCursor string
}

// ListOrdersQueryHandler retrieves pages of orders from the database.
// The scan walks the tenant partition in identifier order; ownership and
// status predicates are applied after the fetch, so the page advances at
// a fixed stride regardless of how many rows the predicates pass.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle executes the listing query. A cursor minted for another tenant or
// another filter combination is rejected as invalid; the handler never
// resumes a scan it did not parameterize itself.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	filter := h.filterContext(query)

	lastKey := ""
	if query.Cursor() != "" {
		cursor, err := kernel.DecodePageCursor(query.Cursor())
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if !cursor.BelongsTo(query.Actor().TenantID()) || cursor.Filter() != filter {
			return ListOrdersQueryResponse{}, errs.NewValueIsInvalidError("cursor")
		}
		lastKey = cursor.LastKey()
	}

	page, hasMore, err := h.fetchPage(ctx, query, lastKey)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{Orders: make([]OrderQueryResponse, 0, len(page))}
	for _, aggregate := range page {
		if !h.policy.CanRead(query.Actor(), aggregate) {
			continue
		}
		if query.Status() != nil && aggregate.Status() != *query.Status() {
			continue
		}
		response.Orders = append(response.Orders, newOrderQueryResponse(aggregate))
	}

	if hasMore {
		response.NextCursor = kernel.NewPageCursor(
			query.Actor().TenantID(),
			page[len(page)-1].ID().String(),
			filter,
		).Encode()
	}

	return response, nil
}

// fetchPage reads one raw page of the keyset scan: up to limit rows, plus
// a look-ahead row deciding whether a continuation cursor exists.
func (h ListOrdersQueryHandler) fetchPage(
	ctx context.Context,
	query ListOrdersQuery,
	lastKey string,
) ([]*order.Order, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tenant_id = ? AND id > ?
		ORDER BY id
		LIMIT ?
	`, query.Actor().TenantID().String(), lastKey, query.Limit()+1).Rows()
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	page := make([]*order.Order, 0, query.Limit())
	hasMore := false
	for rows.Next() {
		if len(page) == query.Limit() {
			hasMore = true
			break
		}

		aggregate, scanErr := scanOrderRow(rows, query.Actor().TenantID())
		if scanErr != nil {
			return nil, false, scanErr
		}
		page = append(page, aggregate)
	}
	if err = rows.Err(); err != nil {
		return nil, false, err
	}

	return page, hasMore, nil
}

// filterContext canonicalizes the predicate set into the string a cursor
// carries, so a token cannot resume a listing with different predicates.
func (h ListOrdersQueryHandler) filterContext(query ListOrdersQuery) string {
	parts := make([]string, 0, 2)
	if query.Status() != nil {
		parts = append(parts, "status="+query.Status().String())
	}
	if !h.policy.ReadsAllTenantOrders(query.Actor()) {
		parts = append(parts, "own="+query.Actor().ID())
	}
	return strings.Join(parts, ";")
}
