package orders

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"context"
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, request *requests.PlaceOrder) (*responses.Order, error)
	GetOrdersByUserID(ctx context.Context, userID string) ([]responses.Order, error)
	GetOrders(ctx context.Context) ([]responses.Order, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, orderModel *models.Order) (orderID string, err error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
}
