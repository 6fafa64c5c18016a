package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/question-csv-exporter/internal/config"
)

// New builds the application logger. Every entry carries a run_id
// so the lines of one conversion can be told apart in shared logs.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return l.With(zap.String("run_id", uuid.NewString())), nil
}
