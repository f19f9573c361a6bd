package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DilipRavikumar/freelance-project/internal/api"
	"github.com/DilipRavikumar/freelance-project/internal/config"
	"github.com/DilipRavikumar/freelance-project/internal/exchange/producer"
	"github.com/DilipRavikumar/freelance-project/internal/repository/employee"
	"github.com/DilipRavikumar/freelance-project/internal/repository/schema"
	"github.com/DilipRavikumar/freelance-project/internal/repository/skill"
	"github.com/DilipRavikumar/freelance-project/internal/seed"
	"github.com/DilipRavikumar/freelance-project/internal/service"
	"github.com/DilipRavikumar/freelance-project/library/pg"
	"github.com/DilipRavikumar/freelance-project/library/yamlreader"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := MustNewConfig(parseFlags())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Info().Msgf("pg=%+v", cfg.Postgres.Conn.Value)
	log.Info().Int("port", cfg.UserAPI.Port.Value).Msg("config loaded")

	pgClient, err := pg.NewPG(rootCtx, cfg.Postgres.Conn.Value, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres init failed")
	}
	defer pgClient.Close()

	if err := schema.Apply(rootCtx, pgClient.Pool()); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	employeeRepo := employee.NewRepository(pgClient.Pool())
	skillRepo := skill.NewRepository(pgClient.Pool())

	if cfg.Seed.IsEnabled() {
		if err := seed.NewSeeder(employeeRepo, skillRepo, log.Logger).Run(rootCtx); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	var eventProducer service.EventProducer

	if bootstrap := cfg.Kafka.BootstrapAddr(); bootstrap != "" {
		employeeProducer, err := initEmployeeProducer(cfg.Kafka)
		if err != nil {
			log.Fatal().Err(err).Msg("kafka producer init failed")
		}
		defer func() { _ = employeeProducer.Close() }()

		eventProducer = employeeProducer
	} else {
		log.Info().Msg("kafka bootstrap not configured, event publishing disabled")
	}

	employees := service.NewEmployees(employeeRepo, eventProducer, log.Logger)

	apiService := api.NewService(api.ServiceDeps{
		Port:      cfg.UserAPI.Port.Value,
		Origin:    cfg.UserAPI.Origin(),
		Employees: employees,
	})

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("starting HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API stopped with error")

			return err
		}

		log.Info().Msg("HTTP API stopped")

		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = group.Wait()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("signal received, graceful shutdown...")
		<-done
		log.Info().Msg("all services stopped")
	case <-done:
		log.Info().Msg("all services stopped")
	}
}

func initEmployeeProducer(kafkaConfig config.KafkaConfig) (*producer.EmployeeProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond
	if kafkaConfig.ProducerClientID != nil && kafkaConfig.ProducerClientID.Value != "" {
		sCfg.ClientID = kafkaConfig.ProducerClientID.Value
	}

	sp, err := sarama.NewSyncProducer([]string{kafkaConfig.Bootstrap.Value}, sCfg)
	if err != nil {
		return nil, err
	}

	return producer.NewEmployeeProducer(
		sp,
		producer.Config{
			Topic:  kafkaConfig.Topic.Value,
			Source: "employee-api",
		},
		log.Logger,
	), nil
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)
	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("failed to read application config")
		return nil
	}

	return cfg
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	godotenv.Load(".env")

	if configPath == "" {
		configPath = "config/application-local.yaml"
	}
	return configPath
}
