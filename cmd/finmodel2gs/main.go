package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/matmaxwellness/finmodel2googlesheet/config"
	"github.com/matmaxwellness/finmodel2googlesheet/internal/pkg/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("error while loading config")
	}

	log := newLogger(cfg)

	a := app.NewApp(cfg, log)
	if err := a.Run(context.Background()); err != nil {
		log.WithError(err).Error("export run failed")
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *logrus.Entry {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger.WithField("app", "finmodel2gs")
}
