package logging

import (
	"go.uber.org/zap"
)

// New returns a development logger for ENV=development and a JSON production
// logger otherwise. Every entry carries the service name.
func New(service, env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", service)), nil
}
