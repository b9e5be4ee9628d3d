package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/api"
	"github.com/ecks6/ContaAI2/internal/analysis"
	"github.com/ecks6/ContaAI2/internal/config"
	"github.com/ecks6/ContaAI2/internal/logging"
	"github.com/ecks6/ContaAI2/internal/operator"
	"github.com/ecks6/ContaAI2/internal/service"
	"github.com/ecks6/ContaAI2/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("contaai starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers)
	delegator.Start()

	analyzer := analysis.NewGeminiAnalyzer(envConfig.GeminiModel)
	svc := service.NewService(dbStorage, delegator, analyzer, envConfig.JWTSecret, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			JWTSecret: envConfig.JWTSecret,
			Service:   svc,
			Operator:  delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
