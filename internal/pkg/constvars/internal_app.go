package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_ADMIN_AUTH_KEY           ContextKey = "adminAuth"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionMedicines    = "medicines"
	MongoCollectionOrders       = "orders"
)

const (
	UserRoleDefault = "user"
	UserRoleAdmin   = "admin"
)

const (
	DoctorStatusPending  = "pending"
	DoctorStatusApproved = "approved"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	OrderStatusPlaced = "placed"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	ImageAllowedMedicineFormats = ".jpg,.jpeg,.png,.webp"
)
