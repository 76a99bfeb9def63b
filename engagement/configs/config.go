package configs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

const envPrefix = "ENGAGEMENT_"

type ServiceConfig struct {
	API              apiConfig              `yaml:"api" envPrefix:"API_"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery" envPrefix:"CONSUL_"`
	MessengerConfig  MessengerConfig        `yaml:"messenger" envPrefix:"KAFKA_"`
	DatabaseConfig   DatabaseConfig         `yaml:"database" envPrefix:"DB_"`
	Jaeger           JaegerConfig           `yaml:"jaeger" envPrefix:"JAEGER_"`
	Prometheus       PrometheusConfig       `yaml:"prometheus" envPrefix:"PROMETHEUS_"`
	Auth             AuthConfig             `yaml:"auth" envPrefix:"AUTH_"`
	Limiter          LimiterConfig          `yaml:"limiter" envPrefix:"LIMITER_"`
}

type apiConfig struct {
	GRPCPort int    `yaml:"grpcPort" env:"GRPC_PORT"`
	HTTPPort int    `yaml:"httpPort" env:"HTTP_PORT"`
	CertFile string `yaml:"certFile" env:"CERT_FILE"`
	KeyFile  string `yaml:"keyFile" env:"KEY_FILE"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address" env:"ADDRESS"`
	// Host is the address other services use to reach this instance.
	Host string `yaml:"host" env:"HOST"`
}

type MessengerConfig struct {
	Kafka KafkaConfig `yaml:"kafka"`
}

type KafkaConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Address string `yaml:"address" env:"ADDRESS"`
	Topic   string `yaml:"topic" env:"TOPIC"`
	GroupID string `yaml:"groupId" env:"GROUP_ID"`
}

type DatabaseConfig struct {
	Driver   string         `yaml:"driver" env:"DRIVER"`
	Mysql    MysqlConfig    `yaml:"mysql" envPrefix:"MYSQL_"`
	Postgres PostgresConfig `yaml:"postgres" envPrefix:"POSTGRES_"`
	Sqlite   SqliteConfig   `yaml:"sqlite" envPrefix:"SQLITE_"`
	Mongo    MongoConfig    `yaml:"mongo" envPrefix:"MONGO_"`
}

type MysqlConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
	User string `yaml:"user" env:"USER"`
	Pass string `yaml:"password" env:"PASSWORD"`
	Name string `yaml:"db_name" env:"NAME"`
}

type PostgresConfig struct {
	Host    string `yaml:"host" env:"HOST"`
	Port    int    `yaml:"port" env:"PORT"`
	User    string `yaml:"user" env:"USER"`
	Pass    string `yaml:"password" env:"PASSWORD"`
	Name    string `yaml:"db_name" env:"NAME"`
	SSLMode string `yaml:"sslmode" env:"SSLMODE"`
}

type SqliteConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type MongoConfig struct {
	URI  string `yaml:"uri" env:"URI"`
	Name string `yaml:"db_name" env:"NAME"`
}

type JaegerConfig struct {
	URL string `yaml:"url" env:"URL"`
}

type PrometheusConfig struct {
	MetricsPort int `yaml:"metricsPort" env:"METRICS_PORT"`
}

type AuthConfig struct {
	// JWTSecret enables bearer token identity when set.
	JWTSecret string `yaml:"jwtSecret" env:"JWT_SECRET"`
}

type LimiterConfig struct {
	Limit int `yaml:"limit" env:"LIMIT"`
	Burst int `yaml:"burst" env:"BURST"`
}

// Default returns the configuration used when nothing overrides it.
func Default() ServiceConfig {
	return ServiceConfig{
		API: apiConfig{GRPCPort: 8083, HTTPPort: 8084},
		ServiceDiscovery: serviceDiscoveryConfig{Consul: consulConfig{
			Address: "localhost:8500",
			Host:    "localhost",
		}},
		MessengerConfig: MessengerConfig{Kafka: KafkaConfig{
			Address: "localhost",
			Topic:   "engagement",
			GroupID: "engagement",
		}},
		DatabaseConfig: DatabaseConfig{
			Driver:   DriverMemory,
			Mysql:    MysqlConfig{Host: "localhost", Port: 3306, Name: "engagement"},
			Postgres: PostgresConfig{Host: "localhost", Port: 5432, Name: "engagement", SSLMode: "disable"},
			Sqlite:   SqliteConfig{Path: "engagement.db"},
			Mongo:    MongoConfig{URI: "mongodb://localhost:27017/?replicaSet=rs0", Name: "ugc"},
		},
		Prometheus: PrometheusConfig{MetricsPort: 8091},
		Limiter:    LimiterConfig{Limit: 100, Burst: 100},
	}
}

// Load reads the YAML file at path over the defaults and applies
// ENGAGEMENT_* environment overrides. A missing file is not an error.
func Load(path string) (ServiceConfig, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			defer f.Close()
			if err := Decode(f, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Decode decodes YAML from r over cfg.
func Decode(r io.Reader, cfg *ServiceConfig) error {
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Validate checks the settings that cannot be defaulted.
func (c ServiceConfig) Validate() error {
	switch c.DatabaseConfig.Driver {
	case DriverMemory, DriverMySQL, DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseConfig.Driver)
	}
	if c.API.GRPCPort <= 0 && c.API.HTTPPort <= 0 {
		return errors.New("at least one of the gRPC and HTTP ports must be set")
	}
	if c.MessengerConfig.Kafka.Enabled && c.MessengerConfig.Kafka.Topic == "" {
		return errors.New("kafka topic is required when kafka is enabled")
	}
	return nil
}
