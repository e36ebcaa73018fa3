package notifications

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// OrderNotificationWorker drains the order-events queue on a fixed interval
// and emails the buyer a confirmation for every event it can deliver.
type OrderNotificationWorker struct {
	OrderQueueService contracts.OrderQueueService
	SMTPService       contracts.SMTPService
	OrderConfig       config.Order
	Limiter           *rate.Limiter
	Log               *zap.Logger
}

func NewOrderNotificationWorker(
	orderQueueService contracts.OrderQueueService,
	smtpService contracts.SMTPService,
	orderConfig config.Order,
	logger *zap.Logger,
) *OrderNotificationWorker {
	return &OrderNotificationWorker{
		OrderQueueService: orderQueueService,
		SMTPService:       smtpService,
		OrderConfig:       orderConfig,
		Limiter:           rate.NewLimiter(rate.Limit(orderConfig.WorkerMaxEmailsPerSec), 1),
		Log:               logger,
	}
}

// Start launches the worker loop. It returns immediately; the loop stops when
// the given context is cancelled.
func (w *OrderNotificationWorker) Start(ctx context.Context) {
	interval := time.Duration(w.OrderConfig.WorkerIntervalInSecond) * time.Second
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.Log.Info("orderNotificationWorker stopped")
				return
			case <-ticker.C:
				w.processBatch(ctx)
			}
		}
	}()

	w.Log.Info("orderNotificationWorker started",
		zap.Duration("interval", interval),
		zap.Int("max_batch", w.OrderConfig.WorkerMaxBatch),
	)
}

func (w *OrderNotificationWorker) processBatch(ctx context.Context) {
	queued, err := w.OrderQueueService.FetchN(ctx, w.OrderConfig.WorkerMaxBatch)
	if err != nil {
		w.Log.Error("orderNotificationWorker fetch failed", zap.Error(err))
		return
	}

	for _, item := range queued {
		if err := w.Limiter.Wait(ctx); err != nil {
			return
		}
		w.handleEvent(ctx, item)
	}
}

func (w *OrderNotificationWorker) handleEvent(ctx context.Context, item *contracts.QueuedOrderEvent) {
	event := item.Event

	err := w.sendConfirmationEmail(event)
	if err == nil {
		if ackErr := w.OrderQueueService.Ack(item.DeliveryTag); ackErr != nil {
			w.Log.Error("orderNotificationWorker ack failed",
				zap.String("order_id", event.OrderID),
				zap.Error(ackErr),
			)
		}
		w.Log.Info("orderNotificationWorker email sent",
			zap.String("order_id", event.OrderID),
		)
		return
	}

	w.Log.Warn("orderNotificationWorker email failed",
		zap.String("order_id", event.OrderID),
		zap.Int("failed_count", event.FailedCount),
		zap.Error(err),
	)

	event.FailedCount++
	if event.FailedCount >= w.OrderConfig.WorkerRetryThreshold {
		if dlqErr := w.OrderQueueService.SendToDLQ(ctx, event); dlqErr != nil {
			w.Log.Error("orderNotificationWorker dead-letter failed",
				zap.String("order_id", event.OrderID),
				zap.Error(dlqErr),
			)
			return
		}
	} else {
		if reqErr := w.OrderQueueService.Reenqueue(ctx, event); reqErr != nil {
			w.Log.Error("orderNotificationWorker reenqueue failed",
				zap.String("order_id", event.OrderID),
				zap.Error(reqErr),
			)
			return
		}
	}

	// The original delivery is acked only once the event has been parked
	// somewhere else, so a crash cannot lose it.
	if ackErr := w.OrderQueueService.Ack(item.DeliveryTag); ackErr != nil {
		w.Log.Error("orderNotificationWorker ack failed",
			zap.String("order_id", event.OrderID),
			zap.Error(ackErr),
		)
	}
}

func (w *OrderNotificationWorker) sendConfirmationEmail(event *contracts.OrderEvent) error {
	if event.UserEmail == "" {
		// Nothing to send to; treat as delivered.
		return nil
	}

	subject := fmt.Sprintf("Order %s confirmed", event.OrderID)
	body := fmt.Sprintf(
		"Your order for %d x %s has been placed.\nTotal: %.2f\nOrder id: %s\n",
		event.Quantity, event.MedicineName, event.TotalPrice, event.OrderID,
	)
	return w.SMTPService.SendEmail(event.UserEmail, subject, body)
}
