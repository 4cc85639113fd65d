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
	Dataset  DatasetConfig  `yaml:"dataset"`
	Search   SearchConfig   `yaml:"search"`
	Worker   WorkerConfig   `yaml:"worker"`
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
	Brokers     []string `yaml:"brokers"`
	SearchTopic string   `yaml:"search_topic"`
	GroupID     string   `yaml:"group_id"`
}

// DatasetConfig selects where the OpenFlights records come from: the CSV
// files ("csv") or the postgres tables ("postgres").
type DatasetConfig struct {
	Source       string `yaml:"source"`
	AirportsFile string `yaml:"airports_file"`
	AirlinesFile string `yaml:"airlines_file"`
	RoutesFile   string `yaml:"routes_file"`
}

type SearchConfig struct {
	MaxDepth     int `yaml:"max_depth"`
	PlanCacheTTL int `yaml:"plan_cache_ttl_seconds"`
}

type WorkerConfig struct {
	StatsReportMinutes int `yaml:"stats_report_minutes"`
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

	return &cfg, nil
}
