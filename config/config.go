package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	MongoDBConfig MongoDBConfig
	JWTSecret     string
	StripeConfig  StripeConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type StripeConfig struct {
	SecretKey string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		StripeConfig: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "sura-tools"
	}

	return &conf
}
