package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Currency        CurrencyConfig       `mapstructure:"currency"`
	Chatbot         ChatbotConfig        `mapstructure:"chatbot"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type ExternalClientConfig struct {
	YahooFinance YahooFinanceConfig `mapstructure:"yahooFinance"`
	MFAPI        MFAPIConfig        `mapstructure:"mfapi"`
	ExchangeRate ExchangeRateConfig `mapstructure:"exchangeRate"`
}

type YahooFinanceConfig struct {
	ChartBaseURL  string `mapstructure:"chartBaseUrl"`
	QuoteBaseURL  string `mapstructure:"quoteBaseUrl"`
	SearchBaseURL string `mapstructure:"searchBaseUrl"`
}

type MFAPIConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type ExchangeRateConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type CurrencyConfig struct {
	// DefaultUsdToInrRate is used whenever the live exchange rate
	// cannot be fetched or comes back non-positive.
	DefaultUsdToInrRate float64 `mapstructure:"defaultUsdToInrRate"`
}

type ChatbotConfig struct {
	Model string `mapstructure:"model"`
}

// LoadConfig reads settings/appsettings.yaml, or appsettings.<ENV>.yaml
// when an environment name is given.
func LoadConfig(path string, env ...string) (*Config, error) {
	var cfg Config

	configName := "appsettings"
	if len(env) > 0 && env[0] != "" {
		configName = "appsettings." + env[0]
	}

	viper.AddConfigPath(path)
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Currency.DefaultUsdToInrRate <= 0 {
		cfg.Currency.DefaultUsdToInrRate = 89.0
	}
	return &cfg, nil
}
