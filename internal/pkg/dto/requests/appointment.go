package requests

type CreateAppointment struct {
	UserID          string `json:"userId" validate:"required"`
	DoctorID        string `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
