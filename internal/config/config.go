package config

import (
	"github.com/DilipRavikumar/freelance-project/library/pg"
	"github.com/DilipRavikumar/freelance-project/library/yamlenv"
)

type Config struct {
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	UserAPI  ApiConfig         `yaml:"userAPI"`
	Seed     SeedConfig        `yaml:"seed"`
}

// KafkaConfig is optional: an empty bootstrap address disables event
// publishing entirely.
type KafkaConfig struct {
	Bootstrap        *yamlenv.Env[string] `yaml:"bootstrap"`
	ProducerClientID *yamlenv.Env[string] `yaml:"producer_client_id"`
	Topic            *yamlenv.Env[string] `yaml:"topic"`
}

type ApiConfig struct {
	Port       *yamlenv.Env[int]    `yaml:"port"`
	CorsOrigin *yamlenv.Env[string] `yaml:"cors_origin"`
}

type SeedConfig struct {
	Enabled *yamlenv.Env[bool] `yaml:"enabled"`
}

func (k KafkaConfig) BootstrapAddr() string {
	if k.Bootstrap == nil {
		return ""
	}
	return k.Bootstrap.Value
}

func (a ApiConfig) Origin() string {
	if a.CorsOrigin == nil || a.CorsOrigin.Value == "" {
		return "http://localhost:4200"
	}
	return a.CorsOrigin.Value
}

func (s SeedConfig) IsEnabled() bool {
	return s.Enabled != nil && s.Enabled.Value
}
