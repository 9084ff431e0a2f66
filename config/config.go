package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Engine   EngineConfig   `yaml:"engine"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers         []string `yaml:"brokers"`
	FlightSyncTopic string   `yaml:"flight_sync_topic"`
	GroupID         string   `yaml:"group_id"`
}

// EngineConfig tunes the routing engine limits exposed over HTTP.
type EngineConfig struct {
	NetworkCacheTTL  int `yaml:"network_cache_ttl_seconds"`
	DefaultMaxStates int `yaml:"default_max_states"`
	MaxStatesLimit   int `yaml:"max_states_limit"`
	MaxStops         int `yaml:"max_stops"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.NetworkCacheTTL <= 0 {
		c.Engine.NetworkCacheTTL = 60
	}
	if c.Engine.DefaultMaxStates <= 0 {
		c.Engine.DefaultMaxStates = 200
	}
	if c.Engine.MaxStatesLimit <= 0 {
		c.Engine.MaxStatesLimit = 2000
	}
	if c.Engine.MaxStops <= 0 {
		c.Engine.MaxStops = 4
	}
}
