package logger

import "go.uber.org/zap"

// New builds the application logger. Production gets sampled JSON output,
// everything else the human-readable development config.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
