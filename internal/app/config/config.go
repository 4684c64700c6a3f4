package config

import (
	"labdash-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			OrderEventsQueue:         utils.GetEnvString("APP_ORDER_EVENTS_QUEUE", "labdash.order-events"),
			OrderEventsEnabled:       utils.GetEnvBool("APP_ORDER_EVENTS_ENABLED", false),
			ReportBucketName:         utils.GetEnvString("APP_REPORT_BUCKET_NAME", "lab-reports"),
			ReportURLExpiryInMinutes: utils.GetEnvInt("APP_REPORT_URL_EXPIRY_IN_MINUTES", 15),
		},
		Vendor: Vendor{
			BaseUrl:          utils.GetEnvString("VENDOR_BASE_URL", "http://localhost:8000"),
			APIKey:           utils.GetEnvString("VENDOR_API_KEY", ""),
			TimeoutInSeconds: utils.GetEnvInt("VENDOR_TIMEOUT_IN_SECONDS", 15),
		},
		Cache: Cache{
			CollectionTTLInSeconds: utils.GetEnvInt("CACHE_COLLECTION_TTL_IN_SECONDS", 60),
			DraftTTLInMinutes:      utils.GetEnvInt("CACHE_DRAFT_TTL_IN_MINUTES", 60),
			CancelFlagTTLInSeconds: utils.GetEnvInt("CACHE_CANCEL_FLAG_TTL_IN_SECONDS", 30),
		},
	}
}
