package notifications

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOrderQueueService struct {
	mock.Mock
}

func (m *MockOrderQueueService) PublishOrderPlaced(ctx context.Context, event *contracts.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderQueueService) FetchN(ctx context.Context, max int) ([]*contracts.QueuedOrderEvent, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contracts.QueuedOrderEvent), args.Error(1)
}

func (m *MockOrderQueueService) Ack(deliveryTag uint64) error {
	args := m.Called(deliveryTag)
	return args.Error(0)
}

func (m *MockOrderQueueService) SendToDLQ(ctx context.Context, event *contracts.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderQueueService) Reenqueue(ctx context.Context, event *contracts.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSMTPService struct {
	mock.Mock
}

func (m *MockSMTPService) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func newTestWorker(queue contracts.OrderQueueService, smtp contracts.SMTPService) *OrderNotificationWorker {
	return NewOrderNotificationWorker(queue, smtp, config.Order{
		WorkerIntervalInSecond: 1,
		WorkerMaxBatch:         10,
		WorkerMaxEmailsPerSec:  100,
		WorkerRetryThreshold:   3,
	}, zap.NewNop())
}

func TestOrderNotificationWorker_HandleEvent(t *testing.T) {
	event := func() *contracts.OrderEvent {
		return &contracts.OrderEvent{
			OrderID:      "507f1f77bcf86cd799439077",
			UserEmail:    "buyer@example.com",
			MedicineName: "Paracetamol",
			Quantity:     2,
			TotalPrice:   25.0,
		}
	}

	t.Run("Successful send acks the delivery", func(t *testing.T) {
		mockQueue := new(MockOrderQueueService)
		mockSMTP := new(MockSMTPService)
		worker := newTestWorker(mockQueue, mockSMTP)

		mockSMTP.On("SendEmail", "buyer@example.com", mock.Anything, mock.Anything).Return(nil)
		mockQueue.On("Ack", uint64(7)).Return(nil)

		worker.handleEvent(context.Background(), &contracts.QueuedOrderEvent{
			Event:       event(),
			DeliveryTag: 7,
		})

		mockQueue.AssertExpectations(t)
		mockSMTP.AssertExpectations(t)
		mockQueue.AssertNotCalled(t, "Reenqueue")
		mockQueue.AssertNotCalled(t, "SendToDLQ")
	})

	t.Run("Failed send below threshold reenqueues", func(t *testing.T) {
		mockQueue := new(MockOrderQueueService)
		mockSMTP := new(MockSMTPService)
		worker := newTestWorker(mockQueue, mockSMTP)

		mockSMTP.On("SendEmail", "buyer@example.com", mock.Anything, mock.Anything).Return(exceptions.ErrSMTPSendEmail(nil, "smtp.test"))

		var reenqueued *contracts.OrderEvent
		mockQueue.On("Reenqueue", mock.Anything, mock.AnythingOfType("*contracts.OrderEvent")).
			Run(func(args mock.Arguments) {
				reenqueued = args.Get(1).(*contracts.OrderEvent)
			}).
			Return(nil)
		mockQueue.On("Ack", uint64(8)).Return(nil)

		worker.handleEvent(context.Background(), &contracts.QueuedOrderEvent{
			Event:       event(),
			DeliveryTag: 8,
		})

		mockQueue.AssertExpectations(t)
		assert.Equal(t, 1, reenqueued.FailedCount, "failed count should be incremented before reenqueue")
		mockQueue.AssertNotCalled(t, "SendToDLQ")
	})

	t.Run("Failed send at threshold goes to the DLQ", func(t *testing.T) {
		mockQueue := new(MockOrderQueueService)
		mockSMTP := new(MockSMTPService)
		worker := newTestWorker(mockQueue, mockSMTP)

		mockSMTP.On("SendEmail", "buyer@example.com", mock.Anything, mock.Anything).Return(exceptions.ErrSMTPSendEmail(nil, "smtp.test"))
		mockQueue.On("SendToDLQ", mock.Anything, mock.AnythingOfType("*contracts.OrderEvent")).Return(nil)
		mockQueue.On("Ack", uint64(9)).Return(nil)

		tired := event()
		tired.FailedCount = 2

		worker.handleEvent(context.Background(), &contracts.QueuedOrderEvent{
			Event:       tired,
			DeliveryTag: 9,
		})

		mockQueue.AssertExpectations(t)
		mockQueue.AssertNotCalled(t, "Reenqueue")
	})

	t.Run("Event without an email address is just acked", func(t *testing.T) {
		mockQueue := new(MockOrderQueueService)
		mockSMTP := new(MockSMTPService)
		worker := newTestWorker(mockQueue, mockSMTP)

		mockQueue.On("Ack", uint64(10)).Return(nil)

		anonymous := event()
		anonymous.UserEmail = ""

		worker.handleEvent(context.Background(), &contracts.QueuedOrderEvent{
			Event:       anonymous,
			DeliveryTag: 10,
		})

		mockQueue.AssertExpectations(t)
		mockSMTP.AssertNotCalled(t, "SendEmail")
	})
}
