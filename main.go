package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("storageBackend", envConfig.StorageBackend).Info("finance-tracker starting")

	if envConfig.AutoMigrate && envConfig.StorageBackend == config.BackendPostgres {
		result, err := storage.RunMigrations(envConfig.PostgresURL())
		if err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("Migration status")
	}

	store, err := storage.Open(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.Open")
		return
	}
	defer store.Close()

	op := operator.NewOperatorDelegator(store, envConfig.OperatorWorkers)
	op.Start()
	defer op.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Config:  envConfig,
		Service: service.NewService(store, op),
		Storage: store,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	logger.Info("finance-tracker stopped")
}
