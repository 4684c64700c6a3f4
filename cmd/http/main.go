package main

import (
	"context"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/delivery/http/controllers"
	"labdash-service/internal/app/delivery/http/middlewares"
	"labdash-service/internal/app/delivery/http/routers"
	"labdash-service/internal/app/drivers/database"
	"labdash-service/internal/app/drivers/logger"
	"labdash-service/internal/app/drivers/messaging"
	"labdash-service/internal/app/drivers/storage"
	"labdash-service/internal/app/services/catalog"
	"labdash-service/internal/app/services/drafts"
	"labdash-service/internal/app/services/orders"
	"labdash-service/internal/app/services/shared/events"
	sharedredis "labdash-service/internal/app/services/shared/redis"
	sharedstorage "labdash-service/internal/app/services/shared/storage"
	"labdash-service/internal/app/services/templates"
	"labdash-service/internal/app/services/vendors/labs"
	"labdash-service/internal/app/services/vendors/markers"
	vendororders "labdash-service/internal/app/services/vendors/orders"
	vendortemplates "labdash-service/internal/app/services/vendors/templates"
	"labdash-service/internal/app/services/vendors/users"
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

	logger.InitLogrus(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.OrderEventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

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

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if bootstrap.RabbitMQ != nil {
		bootstrap.RabbitMQ.Close()
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	vendorTimeout := time.Duration(bootstrap.InternalConfig.Vendor.TimeoutInSeconds) * time.Second
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	collectionCache := sharedredis.NewCollectionCache(redisRepository)

	// Report storage
	reportStorage := sharedstorage.NewReportStorage(bootstrap.Minio)

	// Order events
	var eventPublisher contracts.OrderEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewOrderEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.OrderEventsQueue, bootstrap.Logger)
		if err != nil {
			logrus.Fatalf("Failed to set up order event publisher: %v", err)
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopOrderEventPublisher()
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Vendor clients
	labVendorClient := labs.NewLabVendorClient(bootstrap.InternalConfig.Vendor.BaseUrl, bootstrap.InternalConfig.Vendor.APIKey, vendorTimeout, bootstrap.Logger)
	markerVendorClient := markers.NewMarkerVendorClient(bootstrap.InternalConfig.Vendor.BaseUrl, bootstrap.InternalConfig.Vendor.APIKey, vendorTimeout, bootstrap.Logger)
	templateVendorClient := vendortemplates.NewTemplateVendorClient(bootstrap.InternalConfig.Vendor.BaseUrl, bootstrap.InternalConfig.Vendor.APIKey, vendorTimeout, bootstrap.Logger)
	orderVendorClient := vendororders.NewOrderVendorClient(bootstrap.InternalConfig.Vendor.BaseUrl, bootstrap.InternalConfig.Vendor.APIKey, vendorTimeout, bootstrap.Logger)
	userVendorClient := users.NewUserVendorClient(bootstrap.InternalConfig.Vendor.BaseUrl, bootstrap.InternalConfig.Vendor.APIKey, vendorTimeout, bootstrap.Logger)

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(labVendorClient, markerVendorClient, userVendorClient, collectionCache, bootstrap.InternalConfig, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase, requestTimeout)

	// Drafts
	draftUsecase := drafts.NewDraftUsecase(redisRepository, catalogUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	draftController := controllers.NewDraftController(bootstrap.Logger, draftUsecase, requestTimeout)

	// Templates
	templateUsecase := templates.NewTemplateUsecase(templateVendorClient, catalogUsecase, redisRepository, collectionCache, bootstrap.InternalConfig, bootstrap.Logger)
	templateController := controllers.NewTemplateController(bootstrap.Logger, templateUsecase, requestTimeout)

	// Orders
	orderUsecase := orders.NewOrderUsecase(orderVendorClient, templateVendorClient, redisRepository, collectionCache, reportStorage, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	orderController := controllers.NewOrderController(bootstrap.Logger, orderUsecase, requestTimeout)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, catalogController, draftController, templateController, orderController)
}
