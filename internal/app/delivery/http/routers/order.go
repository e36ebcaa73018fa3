package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/orders"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *orders.OrderController) {
	router.Post("/", orderController.PlaceOrder)
	router.With(middlewares.RequireAdminToken).Get("/", orderController.GetOrders)
	router.Get("/user/{userID}", orderController.GetOrdersByUserID)
}
