package requests

type PlaceOrder struct {
	UserID     string `json:"userId" validate:"required"`
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}
