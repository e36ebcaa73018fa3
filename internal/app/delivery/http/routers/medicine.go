package routers

import (
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/services/core/medicines"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicineController *medicines.MedicineController) {
	router.With(middlewares.RequireAdminToken).Post("/", medicineController.CreateMedicine)
	router.Get("/", medicineController.GetMedicines)
	router.Get("/{medicineID}", medicineController.GetMedicineByID)
	router.With(middlewares.RequireAdminToken).Patch("/{medicineID}/stock", medicineController.UpdateMedicineStock)
	router.With(middlewares.RequireAdminToken).Post("/{medicineID}/image", medicineController.UploadMedicineImage)
}
