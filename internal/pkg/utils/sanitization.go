package utils

import (
	"clinicare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Fullname = strings.TrimSpace(input.Fullname)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
}

func SanitizeCreateMedicineRequest(input *requests.CreateMedicine) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)
}

func SanitizePlaceOrderRequest(input *requests.PlaceOrder) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.MedicineID = strings.TrimSpace(input.MedicineID)
}
