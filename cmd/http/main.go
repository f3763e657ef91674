package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/app/delivery/http/routers"
	"avalia-service/internal/app/drivers/database"
	"avalia-service/internal/app/drivers/logger"
	"avalia-service/internal/app/drivers/messaging"
	"avalia-service/internal/app/drivers/storage"
	"avalia-service/internal/app/services/core/auth"
	"avalia-service/internal/app/services/core/batteries"
	"avalia-service/internal/app/services/core/patients"
	"avalia-service/internal/app/services/core/practitioners"
	"avalia-service/internal/app/services/core/questionnaires"
	"avalia-service/internal/app/services/core/reports"
	"avalia-service/internal/app/services/shared/events"
	"avalia-service/internal/app/services/shared/ratelimiter"
	"avalia-service/internal/app/services/shared/redis"
	sharedstorage "avalia-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Redis
	redisRepository := redis.NewRedisRepository(redisClient)

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:             zapLogger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}

	dbName := driverConfig.MongoDB.DbName

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(mongoClient, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, internalConfig)
	authController := controllers.NewAuthController(zapLogger, authUsecase)

	// Questionnaires
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(mongoClient, dbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository)
	questionnaireController := controllers.NewQuestionnaireController(zapLogger, questionnaireUsecase)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(mongoClient, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := controllers.NewPatientController(zapLogger, patientUsecase)

	// Practitioners
	practitionerMongoRepository := practitioners.NewPractitionerMongoRepository(mongoClient, dbName)
	practitionerUsecase := practitioners.NewPractitionerUsecase(practitionerMongoRepository)
	practitionerController := controllers.NewPractitionerController(zapLogger, practitionerUsecase)

	// Batteries
	batteryEventPublisher, err := events.NewBatteryEventPublisher(rabbitConn, zapLogger, internalConfig.App.RabbitMQBatteryCompletedQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize battery event publisher: %v", err)
	}
	batteryMongoRepository := batteries.NewBatteryMongoRepository(mongoClient, dbName)
	batteryUsecase := batteries.NewBatteryUsecase(
		batteryMongoRepository,
		questionnaireMongoRepository,
		patientMongoRepository,
		redisRepository,
		batteryEventPublisher,
		internalConfig,
		zapLogger,
	)
	batteryController := controllers.NewBatteryController(zapLogger, batteryUsecase)

	// Reports
	reportStorage := sharedstorage.NewMinioReportStorage(minioClient, internalConfig.Minio.BucketName)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	reportUsecase := reports.NewReportUsecase(
		batteryMongoRepository,
		questionnaireMongoRepository,
		reportStorage,
		resourceLimiter,
		internalConfig,
	)
	reportController := controllers.NewReportController(zapLogger, reportUsecase)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		middlewareInstance,
		authController,
		questionnaireController,
		patientController,
		practitionerController,
		batteryController,
		reportController,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", server.Addr)
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Failed to close application resources: %v", err)
	}

	logrus.Println("Server exiting")
}
