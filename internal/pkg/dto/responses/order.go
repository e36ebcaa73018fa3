package responses

type Order struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	MedicineID   string  `json:"medicineId"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}
