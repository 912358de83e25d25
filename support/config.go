package support

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config is the process configuration of the sample servers.
type Config struct {
	Port          int               `env:"PORT" envDefault:"9080"`
	ActionPrefix  string            `env:"ACTION_PREFIX" envDefault:"TODO_"`
	LogLevel      string            `env:"LOG_LEVEL" envDefault:"info"`
	TraceExporter string            `env:"TRACE_EXPORTER" envDefault:"none"`
	OTLPEndpoint  string            `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	OTLPHeaders   map[string]string `env:"OTLP_HEADERS"`
	OTLPInsecure  bool              `env:"OTLP_INSECURE"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse environment")
	}

	return config, nil
}
