package support

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func NewLogger(config Config) (*zerolog.Logger, error) {
	return newLogger(os.Stderr, config.LogLevel)
}

func newLogger(w io.Writer, level string) (*zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	logger := zerolog.New(w).Level(parsed).With().Timestamp().Logger()
	return &logger, nil
}
