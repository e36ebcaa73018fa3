package requests

type RegisterUser struct {
	Fullname string `json:"fullname" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}
