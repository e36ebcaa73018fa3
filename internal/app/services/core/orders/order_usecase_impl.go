package orders

import (
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/medicines"
	"clinicare-service/internal/app/services/core/users"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository    OrderRepository
	MedicineRepository medicines.MedicineRepository
	UserRepository     users.UserRepository
	OrderQueueService  contracts.OrderQueueService
	Log                *zap.Logger
}

func NewOrderUsecase(
	orderRepository OrderRepository,
	medicineRepository medicines.MedicineRepository,
	userRepository users.UserRepository,
	orderQueueService contracts.OrderQueueService,
	logger *zap.Logger,
) OrderUsecase {
	return &orderUsecase{
		OrderRepository:    orderRepository,
		MedicineRepository: medicineRepository,
		UserRepository:     userRepository,
		OrderQueueService:  orderQueueService,
		Log:                logger,
	}
}

func (uc *orderUsecase) PlaceOrder(ctx context.Context, request *requests.PlaceOrder) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.PlaceOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", request.UserID),
		zap.String("medicine_id", request.MedicineID),
		zap.Int("quantity", request.Quantity),
	)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	// Guarded decrement: only succeeds when stock covers the quantity; the
	// returned document is the pre-decrement snapshot.
	medicine, err := uc.MedicineRepository.DecrementStock(ctx, request.MedicineID, request.Quantity)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		// No match: either the medicine does not exist or the guard failed.
		// A second lookup tells the two apart; stock is untouched either way.
		existing, err := uc.MedicineRepository.FindByID(ctx, request.MedicineID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrMedicineNotExist(nil)
		}
		return nil, exceptions.ErrInsufficientStock(nil)
	}

	now := time.Now()
	orderModel := &models.Order{
		UserID:       request.UserID,
		MedicineID:   request.MedicineID,
		Quantity:     request.Quantity,
		PricePerUnit: medicine.Price,
		TotalPrice:   float64(request.Quantity) * medicine.Price,
		Status:       constvars.OrderStatusPlaced,
		CreatedAt:    now,
	}

	// Second, unguarded write. If it fails the decrement is not rolled back.
	orderID, err := uc.OrderRepository.CreateOrder(ctx, orderModel)
	if err != nil {
		return nil, err
	}

	uc.publishOrderPlaced(ctx, requestID, orderID, user, medicine, orderModel)

	uc.Log.Info("orderUsecase.PlaceOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("order_id", orderID),
	)

	return &responses.Order{
		ID:           orderID,
		UserID:       orderModel.UserID,
		MedicineID:   orderModel.MedicineID,
		Quantity:     orderModel.Quantity,
		PricePerUnit: orderModel.PricePerUnit,
		TotalPrice:   orderModel.TotalPrice,
		Status:       orderModel.Status,
		CreatedAt:    now.Format(time.RFC3339),
	}, nil
}

// publishOrderPlaced is best effort: a broker outage must not fail an order
// that is already recorded.
func (uc *orderUsecase) publishOrderPlaced(ctx context.Context, requestID, orderID string, user *models.User, medicine *models.Medicine, orderModel *models.Order) {
	if uc.OrderQueueService == nil {
		return
	}

	event := &contracts.OrderEvent{
		OrderID:      orderID,
		UserID:       orderModel.UserID,
		UserEmail:    user.Email,
		MedicineID:   orderModel.MedicineID,
		MedicineName: medicine.Name,
		Quantity:     orderModel.Quantity,
		TotalPrice:   orderModel.TotalPrice,
	}
	if err := uc.OrderQueueService.PublishOrderPlaced(ctx, event); err != nil {
		uc.Log.Warn("orderUsecase.PlaceOrder event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

func (uc *orderUsecase) GetOrdersByUserID(ctx context.Context, userID string) ([]responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.GetOrdersByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	orderModels, err := uc.OrderRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildOrderResponses(orderModels), nil
}

func (uc *orderUsecase) GetOrders(ctx context.Context) ([]responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.GetOrders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	orderModels, err := uc.OrderRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildOrderResponses(orderModels), nil
}

func buildOrderResponses(orderModels []models.Order) []responses.Order {
	orderResponses := make([]responses.Order, 0, len(orderModels))
	for i := range orderModels {
		order := &orderModels[i]
		orderResponses = append(orderResponses, responses.Order{
			ID:           order.ID.Hex(),
			UserID:       order.UserID,
			MedicineID:   order.MedicineID,
			Quantity:     order.Quantity,
			PricePerUnit: order.PricePerUnit,
			TotalPrice:   order.TotalPrice,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt.Format(time.RFC3339),
		})
	}
	return orderResponses
}
