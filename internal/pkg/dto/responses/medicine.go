package responses

type Medicine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

type MedicineImageUpload struct {
	MedicineID string `json:"medicineId"`
	ObjectName string `json:"objectName"`
	ImageURL   string `json:"imageUrl,omitempty"`
}
