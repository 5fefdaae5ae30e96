package configs

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfig = `{
  "port": "8080",
  "env": "DEV",
  "max_pool_size": 50,
  "mongo_uri": "mongodb://localhost:27017",
  "mongo_db_name": "c2p",
  "kafka_config": {
    "brokers": "localhost:9092",
    "verification_topic": "c2p.verifications"
  },
  "mercantil": {
    "environment": "certification",
    "production": {
      "client_id": "prod-client",
      "merchant_id": "200287",
      "secret_key": "prod-secret",
      "endpoint": "https://apimbu.mercantilbanco.com/mercantil-banco/prod/v1/payment/c2p"
    },
    "certification": {
      "client_id": "cert-client",
      "merchant_id": "100123",
      "secret_key": "cert-secret",
      "endpoint": "https://apimbu.mercantilbanco.com/mercantil-banco/sandbox/v1/payment/c2p"
    }
  },
  "telegram_bot_token": "token",
  "telegram_channel_id": {
    "incident": -100200,
    "verification": -100201
  }
}`

func TestLoadTestConfig(t *testing.T) {
	dir := t.TempDir()
	if err := ioutil.WriteFile(filepath.Join(dir, "config_test.json"), []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadTestConfig(dir)
	if err != nil {
		t.Fatalf("LoadTestConfig() error = %v", err)
	}

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, 50, config.MaxPoolSize)
	assert.Equal(t, "c2p.verifications", config.KafkaConfig.VerificationTopic)
	assert.Equal(t, "certification", config.Mercantil.Environment)
	assert.Equal(t, int64(-100200), config.TelegramChannelId.Incident)
}

func TestMercantil_ActiveCredentials(t *testing.T) {
	mercantil := Mercantil{
		Environment:   "production",
		Production:    MercantilCredentials{ClientID: "prod-client"},
		Certification: MercantilCredentials{ClientID: "cert-client"},
	}

	assert.Equal(t, "prod-client", mercantil.ActiveCredentials().ClientID)

	mercantil.Environment = "certification"
	assert.Equal(t, "cert-client", mercantil.ActiveCredentials().ClientID)

	// anything that is not production falls back to the sandbox
	mercantil.Environment = ""
	assert.Equal(t, "cert-client", mercantil.ActiveCredentials().ClientID)
}
