package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration. The seller, payment and note
// enumerations live here rather than in code so the register can vary them
// from one day to the next.
type Config struct {
	// Store
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Register enumerations
	Sellers        []string `env:"SELLERS"         envDefault:"João,Maria,Pedro,Ana"`
	PaymentOptions []string `env:"PAYMENT_OPTIONS" envDefault:"Dinheiro,PIX,Troca,Visa - Débito,Visa - Crédito,Mastercard - Débito,Mastercard - Crédito,Elo - Débito,Elo - Crédito,American Express - Débito,American Express - Crédito,Hipercard - Débito,Hipercard - Crédito"`
	NoteOptions    []string `env:"NOTE_OPTIONS"    envDefault:"PDV,POS Rede,POS PagSeguro,POS Getnet,Link Rede,Outro"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
