package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment at
// startup. The two signing secrets are required: a process without them
// cannot issue or verify a single token, so their absence is fatal.
type Config struct {
	AccessSecret  string `env:"JWT_ACCESS_SECRET,required"`
	RefreshSecret string `env:"JWT_REFRESH_SECRET,required"`

	Issuer              string        `env:"AUTH_ISSUER" envDefault:"taskdeck"`
	DatabaseFile        string        `env:"DATABASE_FILE" envDefault:"tasks.db"`
	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
