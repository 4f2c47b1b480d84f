package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BOT_ADDR is the host:port of a running bot, the suite is skipped when empty
	BotAddr      string `envconfig:"BOT_ADDR"`
	AdminAddress string `envconfig:"ADMIN_ADDRESS"`
	// TRANSPORT_JWT_SECRET must match the bot's when it requires tokens
	TransportSecret string `envconfig:"TRANSPORT_JWT_SECRET"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_REPLY_TIMEOUT bounds each wait for a frame
	ReplyTimeout time.Duration `envconfig:"E2E_REPLY_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
