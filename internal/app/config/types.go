package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App   App
		JWT   JWT
		Order Order
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		Address                        string
		Timezone                       string
		EndpointPrefix                 string
		AdminToken                     string
		MaxRequests                    int
		ShutdownTimeout                int
		RequestBodyLimitInMegabyte     int
		SessionExpiredTimeInHours      int
		MedicineImageMaxUploadSizeInMB int64
		MedicineImageURLExpiryInHours  int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Order struct {
		NotificationsEnabled   bool
		WorkerIntervalInSecond int
		WorkerMaxBatch         int
		WorkerMaxEmailsPerSec  float64
		WorkerRetryThreshold   int
	}
)
