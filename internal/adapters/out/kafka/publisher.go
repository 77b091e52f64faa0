// Package kafka publishes denormalized order snapshots to a Kafka topic.
//
// The publisher is best-effort by contract: command handlers log a warning
// and report partial success when a publish fails, so nothing here retries
// or buffers. When no brokers are configured the publisher degrades to a
// no-op, which keeps local and test setups free of a broker dependency.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"resto/internal/core/domain/model/order"
)

// OrderSnapshot is the wire form of an order event. It mirrors the read-model
// response shape so downstream consumers see the same field names as API
// clients do.
type OrderSnapshot struct {
	TenantID    string             `json:"tenantId"`
	OrderID     string             `json:"orderId"`
	Status      string             `json:"status"`
	Items       []OrderItemPayload `json:"items"`
	Total       float64            `json:"total"`
	CreatedBy   string             `json:"createdBy"`
	PreparedBy  *string            `json:"preparedBy,omitempty"`
	DeliveredBy *string            `json:"deliveredBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	DeliveredAt *time.Time         `json:"deliveredAt,omitempty"`
}

// OrderItemPayload is a single line of an order snapshot.
type OrderItemPayload struct {
	DishRef  string `json:"dishRef"`
	Quantity int    `json:"quantity"`
}

// OrderSnapshotPublisher writes one message per order change, keyed by
// tenant and order id so changes for the same order land in one partition
// in commit order.
type OrderSnapshotPublisher struct {
	writer *kafka.Writer
}

// NewOrderSnapshotPublisher connects a publisher to the brokers listed in
// brokersCSV (comma separated). An empty list yields a disabled publisher
// whose PublishOrderChanged always succeeds without writing anything.
func NewOrderSnapshotPublisher(brokersCSV string, topic string) *OrderSnapshotPublisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &OrderSnapshotPublisher{}
	}

	return &OrderSnapshotPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// Enabled reports whether the publisher actually writes to a broker.
func (p *OrderSnapshotPublisher) Enabled() bool {
	return p.writer != nil
}

// PublishOrderChanged emits the current state of the aggregate.
func (p *OrderSnapshotPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if !p.Enabled() {
		return nil
	}

	items := make([]OrderItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemPayload{DishRef: item.DishRef, Quantity: item.Quantity})
	}

	snapshot := OrderSnapshot{
		TenantID:    aggregate.TenantID().String(),
		OrderID:     aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		Items:       items,
		Total:       aggregate.Total(),
		CreatedBy:   aggregate.CreatedBy(),
		PreparedBy:  aggregate.PreparedBy(),
		DeliveredBy: aggregate.DeliveredBy(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal order snapshot: %w", err)
	}

	key := fmt.Sprintf("%s/%s", snapshot.TenantID, snapshot.OrderID)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderSnapshotPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
