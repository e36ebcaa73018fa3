package responses

type Appointment struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt,omitempty"`
}
