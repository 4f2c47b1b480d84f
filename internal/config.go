package internal

import (
	"bot-lab/domain"
	"bot-lab/errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	AdminAddress    string `env:"ADMIN_ADDRESS,required=true" validate:"required"`
	BotName         string `env:"BOT_NAME,default=Iyii Bot" validate:"required"`
	CommandPrefix   string `env:"COMMAND_PREFIX,default=!"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	OpenAIModel     string `env:"OPENAI_MODEL,default=gpt-3.5-turbo" validate:"required"`
	WebsiteURL      string `env:"WEBSITE_URL,default=https://iyii.onrender.com" validate:"omitempty,url"`
	AudiomackURL    string `env:"AUDIOMACK_URL,default=https://audiomack.com/Iyii217" validate:"omitempty,url"`
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
	Host            string `env:"HOST,default=0.0.0.0"`
	Port            int    `env:"PORT,default=3000" validate:"min=1,max=65535"`
	GrpcHealthPort  int    `env:"GRPC_HEALTH_PORT,default=0" validate:"min=0,max=65535"`
	NumberOfWorkers int    `env:"NUMBER_OF_WORKERS,default=4" validate:"min=1"`
	BufferSize      int    `env:"BUFFER_SIZE,default=256" validate:"min=1"`
	PairRetries     int    `env:"PAIR_RETRIES,default=0" validate:"min=0,max=10"`

	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT,default=20s" validate:"gt=0"`
	DeliveryTimeout   time.Duration `env:"DELIVERY_TIMEOUT,default=10s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HealthInterval    time.Duration `env:"HEALTH_INTERVAL,default=5s" validate:"gt=0"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=30s"`
	TransportTokenTTL time.Duration `env:"TRANSPORT_TOKEN_TTL,default=24h" validate:"gt=0"`

	AutoResponder     bool   `env:"AUTO_RESPONDER,default=false"`
	RebindOnRestore   bool   `env:"REBIND_ON_RESTORE,default=false"`
	ModerationEnabled bool   `env:"MODERATION_ENABLED,default=true"`
	CharReplacement   string `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	TransportSecret   string `env:"TRANSPORT_JWT_SECRET" validate:"omitempty,min=16"`
}

// Validate checks field constraints and the single-character settings.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := c.Prefix(); err != nil {
		return err
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

func (c Config) Admin() domain.Address {
	return domain.Address(c.AdminAddress)
}

func (c Config) Prefix() (rune, error) {
	r := []rune(c.CommandPrefix)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w, got %q", errors.ErrInvalidPrefix, c.CommandPrefix)
	}
	return r[0], nil
}

func (c Config) GenerationConfigured() bool {
	return c.OpenAIAPIKey != ""
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
