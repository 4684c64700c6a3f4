package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App    App
		Vendor Vendor
		Cache  Cache
	}

	DriverConfig struct {
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		RequestTimeoutInSeconds  int
		OrderEventsQueue         string
		OrderEventsEnabled       bool
		ReportBucketName         string
		ReportURLExpiryInMinutes int
	}

	Vendor struct {
		BaseUrl          string
		APIKey           string
		TimeoutInSeconds int
	}

	Cache struct {
		CollectionTTLInSeconds int
		DraftTTLInMinutes      int
		CancelFlagTTLInSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
