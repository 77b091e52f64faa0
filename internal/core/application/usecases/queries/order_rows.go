package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// orderColumns is the column list every order query selects; scanOrderRow
// scans rows produced from it.
const orderColumns = `
	id,
	status,
	items,
	total,
	created_by,
	prepared_by,
	delivered_by,
	created_at,
	updated_at,
	delivered_at`

type orderItemRow struct {
	DishRef  string `json:"dishRef"`
	Quantity int    `json:"quantity"`
}

func scanOrderRow(rows *sql.Rows, tenantID kernel.TenantID) (*order.Order, error) {
	var (
		id          string
		status      int
		itemsRaw    []byte
		total       float64
		createdBy   string
		preparedBy  sql.NullString
		deliveredBy sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
		deliveredAt sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&status,
		&itemsRaw,
		&total,
		&createdBy,
		&preparedBy,
		&deliveredBy,
		&createdAt,
		&updatedAt,
		&deliveredAt,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(id)
	if err != nil {
		return nil, err
	}

	items, err := decodeOrderItems(itemsRaw)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID,
		tenantID,
		order.Status(status),
		items,
		total,
		createdBy,
		nullableString(preparedBy),
		nullableString(deliveredBy),
		createdAt.UTC(),
		updatedAt.UTC(),
		nullableTime(deliveredAt),
	)
}

func decodeOrderItems(raw []byte) ([]order.Item, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var itemRows []orderItemRow
	if err := json.Unmarshal(raw, &itemRows); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, row := range itemRows {
		items = append(items, order.Item{DishRef: row.DishRef, Quantity: row.Quantity})
	}
	return items, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}
