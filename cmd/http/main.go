package main

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/delivery/http/routers"
	"clinicare-service/internal/app/drivers/database"
	"clinicare-service/internal/app/drivers/logger"
	"clinicare-service/internal/app/drivers/mailer"
	"clinicare-service/internal/app/drivers/messaging"
	"clinicare-service/internal/app/drivers/storage"
	"clinicare-service/internal/app/services/core/appointments"
	"clinicare-service/internal/app/services/core/auth"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/app/services/core/medicines"
	"clinicare-service/internal/app/services/core/notifications"
	"clinicare-service/internal/app/services/core/orders"
	"clinicare-service/internal/app/services/core/session"
	"clinicare-service/internal/app/services/core/users"
	"clinicare-service/internal/app/services/shared/orderqueue"
	sharedredis "clinicare-service/internal/app/services/shared/redis"
	sharedsmtp "clinicare-service/internal/app/services/shared/smtp"
	sharedstorage "clinicare-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitProcessLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopWorker()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	smtpService := sharedsmtp.NewSmtpService(smtpClient)

	orderQueueService, err := orderqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Order.WorkerMaxBatch,
	)
	if err != nil {
		logrus.Fatalf("Error setting up order queue: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		SessionService: sessionService,
		InternalConfig: bootstrap.InternalConfig,
	}

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		doctorMongoRepository,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Medicine
	medicineMongoRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB, dbName)
	medicineUsecase := medicines.NewMedicineUsecase(
		medicineMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)
	medicineController := medicines.NewMedicineController(bootstrap.Logger, medicineUsecase, bootstrap.InternalConfig)

	// Order
	orderMongoRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB, dbName)
	orderUsecase := orders.NewOrderUsecase(
		orderMongoRepository,
		medicineMongoRepository,
		userMongoRepository,
		orderQueueService,
		bootstrap.Logger,
	)
	orderController := orders.NewOrderController(bootstrap.Logger, orderUsecase)

	// Order notification worker
	if bootstrap.InternalConfig.Order.NotificationsEnabled {
		worker := notifications.NewOrderNotificationWorker(
			orderQueueService,
			smtpService,
			bootstrap.InternalConfig.Order,
			bootstrap.Logger,
		)
		worker.Start(workerCtx)
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		userController,
		authController,
		doctorController,
		appointmentController,
		medicineController,
		orderController,
	)
}
