package requests

type CreateMedicine struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"omitempty,gte=0"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Image       string  `json:"image" validate:"omitempty,max=500"`
}

type UpdateMedicineStock struct {
	Stock int `json:"stock" validate:"gte=0"`
}
