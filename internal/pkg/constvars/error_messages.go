package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientAdminOnly                     = "admin access required"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientMedicineNotFound              = "medicine not found"
	ErrClientOrderNotFound                 = "order not found"
	ErrClientInsufficientStock             = "not enough stock for the requested quantity"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)
