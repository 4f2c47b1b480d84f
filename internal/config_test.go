package internal

import (
	"bot-lab/errors"
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	// Given only the admin address
	_, err := env.UnmarshalFromEnviron(&config)
	req.Error(err)

	t.Setenv("ADMIN_ADDRESS", "2347078226362@c.us")
	_, err = env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	// Then every other setting has a usable default
	req.NoError(config.Validate())
	req.Equal("Iyii Bot", config.BotName)
	req.Equal(3000, config.Port)
	req.Equal(4, config.NumberOfWorkers)
	req.Equal(20*time.Second, config.GenerationTimeout)
	req.True(config.ModerationEnabled)
	req.False(config.RebindOnRestore)
	req.False(config.AutoResponder)
	req.Equal("https://iyii.onrender.com", config.WebsiteURL)
	req.Equal("https://audiomack.com/Iyii217", config.AudiomackURL)
	req.False(config.GenerationConfigured())

	prefix, err := config.Prefix()
	req.NoError(err)
	req.Equal('!', prefix)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			AdminAddress:      "admin@c.us",
			BotName:           "Iyii Bot",
			CommandPrefix:     "!",
			OpenAIModel:       "gpt-3.5-turbo",
			Port:              3000,
			NumberOfWorkers:   1,
			BufferSize:        1,
			GenerationTimeout: time.Second,
			DeliveryTimeout:   time.Second,
			RestartInterval:   time.Second,
			HealthInterval:    time.Second,
			TransportTokenTTL: time.Hour,
			CharReplacement:   "*",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"valid", func(c *Config) {}, nil},
		{"multi-character prefix", func(c *Config) { c.CommandPrefix = "!!" }, errors.ErrInvalidPrefix},
		{"empty prefix", func(c *Config) { c.CommandPrefix = "" }, errors.ErrInvalidPrefix},
		{"missing admin", func(c *Config) { c.AdminAddress = "" }, nil},
		{"port out of range", func(c *Config) { c.Port = 70000 }, nil},
		{"no worker", func(c *Config) { c.NumberOfWorkers = 0 }, nil},
		{"short transport secret", func(c *Config) { c.TransportSecret = "short" }, nil},
		{"bad base url", func(c *Config) { c.OpenAIBaseURL = "not a url" }, nil},
		{"bad replacement", func(c *Config) { c.CharReplacement = "**" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.name == "valid" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}
