package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Prefix            string            `json:"prefix" mapstructure:"prefix"`
	Port              string            `json:"port" mapstructure:"port"`
	ENV               string            `json:"env" mapstructure:"env"`
	MaxPoolSize       int               `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI          string            `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDBName       string            `json:"mongo_db_name" mapstructure:"mongo_db_name"`
	KafkaConfig       Kafka             `json:"kafka_config" mapstructure:"kafka_config"`
	Mercantil         Mercantil         `json:"mercantil" mapstructure:"mercantil"`
	TelegramBotToken  string            `json:"telegram_bot_token" mapstructure:"telegram_bot_token"`
	TelegramChannelId TelegramChannelId `json:"telegram_channel_id" mapstructure:"telegram_channel_id"`
}

type Kafka struct {
	Brokers           string `json:"brokers" mapstructure:"brokers"`
	VerificationTopic string `json:"verification_topic" mapstructure:"verification_topic"`
}

type TelegramChannelId struct {
	Incident     int64 `json:"incident" mapstructure:"incident"`
	Verification int64 `json:"verification" mapstructure:"verification"`
}

// Mercantil selects one credential tuple per environment. Environment is
// "production" or "certification"; credentials are immutable after load.
type Mercantil struct {
	Environment   string               `json:"environment" mapstructure:"environment"`
	Production    MercantilCredentials `json:"production" mapstructure:"production"`
	Certification MercantilCredentials `json:"certification" mapstructure:"certification"`
}

type MercantilCredentials struct {
	ClientID   string `json:"client_id" mapstructure:"client_id"`
	MerchantID string `json:"merchant_id" mapstructure:"merchant_id"`
	SecretKey  string `json:"secret_key" mapstructure:"secret_key"`
	Endpoint   string `json:"endpoint" mapstructure:"endpoint"`
}

// ActiveCredentials returns the credential tuple for the configured
// environment, defaulting to certification like the bank sandbox docs.
func (m Mercantil) ActiveCredentials() MercantilCredentials {
	if m.Environment == "production" {
		return m.Production
	}
	return m.Certification
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
