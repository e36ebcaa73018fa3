package utils

import (
	"clinicare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Fullname: "Jordan Lee",
			Email:    "  TEST@EXAMPLE.COM  ",
			Password: "Sup3rSecret!",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Fullname Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Fullname: "  Jordan Lee  ",
			Email:    "test@example.com",
			Password: "Sup3rSecret!",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Jordan Lee", request.Fullname, "fullname should be trimmed")
	})
}

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	t.Run("Trims and lowercases", func(t *testing.T) {
		request := &requests.CreateDoctor{
			Name:           "  Dr. Amelia Wong  ",
			Specialization: "  Cardiology  ",
			Email:          "  AMELIA@CLINIC.ORG  ",
		}

		SanitizeCreateDoctorRequest(request)

		assert.Equal(t, "Dr. Amelia Wong", request.Name)
		assert.Equal(t, "Cardiology", request.Specialization)
		assert.Equal(t, "amelia@clinic.org", request.Email)
	})
}

func TestSanitizePlaceOrderRequest(t *testing.T) {
	t.Run("Trims ids", func(t *testing.T) {
		request := &requests.PlaceOrder{
			UserID:     "  507f1f77bcf86cd799439011  ",
			MedicineID: "  507f1f77bcf86cd799439022  ",
			Quantity:   2,
		}

		SanitizePlaceOrderRequest(request)

		assert.Equal(t, "507f1f77bcf86cd799439011", request.UserID)
		assert.Equal(t, "507f1f77bcf86cd799439022", request.MedicineID)
		assert.Equal(t, 2, request.Quantity, "quantity should be untouched")
	})
}
