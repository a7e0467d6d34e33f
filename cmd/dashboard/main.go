package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dataset é carregado uma única vez; depois disso fica imutável em
	// memória e os handlers só leem
	loader := dataset.NewLoader()
	records, err := loader.Load(cfg.Dataset.Path)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	reportingService, err := reporting.NewService(cfg, records)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de relatórios")
	}

	server, err := api.New(cfg, reportingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
