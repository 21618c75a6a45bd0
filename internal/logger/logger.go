package logger

import "go.uber.org/zap"

// NewNamed creates a named zap logger appropriate for the given environment:
// human-readable output in development, JSON in anything else.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
