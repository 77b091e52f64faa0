package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds everything the process needs from its environment.
// Kafka settings are optional: with no brokers configured the order
// snapshot stream is disabled and commands still succeed.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaBrokers           string `env:"KAFKA_BROKERS"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"order.changed"`
}

// GetConfig parses the configuration from environment variables.
func GetConfig() (Config, error) {
	config := Config{}
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return config, nil
}

// PostgresDSN builds the connection string for the primary store.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
