package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		HTTP    HTTP
		Panel   Panel
		Webhook Webhook
		OneBot  OneBot
		Log     Log
	}

	HTTP struct {
		Address string `env:"HTTP_ADDRESS" env-default:":8893"`
	}

	Panel struct {
		Host               string        `env:"PANEL_HOST" env-default:"http://localhost:10086"`
		APIKey             string        `env:"PANEL_API_KEY"`
		InsecureSkipVerify bool          `env:"PANEL_INSECURE_SKIP_VERIFY" env-default:"true"`
		RequestTimeout     time.Duration `env:"PANEL_REQUEST_TIMEOUT" env-default:"10s"`
		OperateTimeout     time.Duration `env:"PANEL_OPERATE_TIMEOUT" env-default:"30s"`
		PageSize           int           `env:"PANEL_PAGE_SIZE" env-default:"20"`
	}

	Webhook struct {
		Secret string `env:"WEBHOOK_SECRET"`
	}

	OneBot struct {
		GatewayURL  string `env:"ONEBOT_GATEWAY_URL"`
		AccessToken string `env:"ONEBOT_ACCESS_TOKEN"`
	}

	Log struct {
		Path  string `env:"LOG_PATH" env-default:"./panelbot.log"`
		Level string `env:"LOG_LEVEL" env-default:"info"`
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	cfg.Panel.Host = strings.TrimRight(cfg.Panel.Host, "/")

	return cfg, nil
}

// PanelReady reports whether the panel connection is configured. Commands
// check this at dispatch time instead of failing the whole process at boot.
func (c *Config) PanelReady() error {
	if c.Panel.Host == "" {
		return fmt.Errorf("PANEL_HOST is not set")
	}
	if c.Panel.APIKey == "" {
		return fmt.Errorf("PANEL_API_KEY is not set")
	}
	return nil
}
