package contracts

import "context"

// OrderEvent is the payload published when an order has been recorded.
type OrderEvent struct {
	OrderID      string  `json:"order_id"`
	UserID       string  `json:"user_id"`
	UserEmail    string  `json:"user_email,omitempty"`
	MedicineID   string  `json:"medicine_id"`
	MedicineName string  `json:"medicine_name"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
	FailedCount  int     `json:"failed_count"`
}

type OrderQueueService interface {
	PublishOrderPlaced(ctx context.Context, event *OrderEvent) error
	FetchN(ctx context.Context, max int) ([]*QueuedOrderEvent, error)
	Ack(deliveryTag uint64) error
	SendToDLQ(ctx context.Context, event *OrderEvent) error
	Reenqueue(ctx context.Context, event *OrderEvent) error
}

// QueuedOrderEvent pairs a decoded event with its broker delivery tag so the
// worker can ack exactly the message it processed.
type QueuedOrderEvent struct {
	Event       *OrderEvent
	DeliveryTag uint64
}
