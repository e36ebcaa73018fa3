package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	RegisterUserSuccessMessage = "user registered successfully"
	GetUserSuccessMessage      = "get user successfully"
	GetProfileSuccessMessage   = "get profile successfully"

	// Auth messages
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	// Doctor-related messages
	CreateDoctorSuccessMessage       = "doctor created successfully"
	GetDoctorsSuccessMessage         = "get doctors successfully"
	GetDoctorSuccessMessage          = "get doctor successfully"
	UpdateDoctorStatusSuccessMessage = "doctor status updated successfully"

	// Appointment-related messages
	CreateAppointmentSuccessMessage       = "appointment booked successfully"
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"

	// Medicine-related messages
	CreateMedicineSuccessMessage      = "medicine created successfully"
	GetMedicinesSuccessMessage        = "get medicines successfully"
	GetMedicineSuccessMessage         = "get medicine successfully"
	UpdateMedicineStockSuccessMessage = "medicine stock updated successfully"
	UploadMedicineImageSuccessMessage = "medicine image uploaded successfully"

	// Order-related messages
	PlaceOrderSuccessMessage = "order placed successfully"
	GetOrdersSuccessMessage  = "get orders successfully"
)
