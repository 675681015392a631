package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/goto/salt/config"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/mention"
	"github.com/goto/discuss/internal/store"
	"github.com/goto/discuss/jobs"
	"github.com/goto/discuss/pkg/opentelemetry"
	"github.com/goto/discuss/plugins/attachments"
	"github.com/goto/discuss/plugins/notifiers"
)

type DefaultAuth struct {
	HeaderKey string `mapstructure:"header_key" default:"X-Auth-Email"`
}

type Auth struct {
	Default DefaultAuth `mapstructure:"default"`
}

type Config struct {
	Port            int                    `mapstructure:"port" default:"8080"`
	LogLevel        string                 `mapstructure:"log_level" default:"info"`
	ShutdownTimeout time.Duration          `mapstructure:"shutdown_timeout" default:"10s"`
	DB              store.Config           `mapstructure:"db"`
	Comment         comment.Config         `mapstructure:"comment"`
	Mention         mention.Config         `mapstructure:"mention"`
	Attachments     attachments.Config     `mapstructure:"attachments"`
	Notifier        notifiers.Config       `mapstructure:"notifier"`
	Jobs            map[jobs.Type]jobs.Job `mapstructure:"jobs"`
	Telemetry       opentelemetry.Config   `mapstructure:"telemetry"`
	Auth            Auth                   `mapstructure:"auth"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
