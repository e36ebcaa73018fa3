package requests

type CreateDoctor struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
}

type UpdateDoctorStatus struct {
	Status string `json:"status" validate:"required,oneof=pending approved"`
}
