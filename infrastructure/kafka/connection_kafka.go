package kafka

import (
	"encoding/json"
	"strings"

	"c2p-system/domain/constants"
	"c2p-system/domain/entities"

	"github.com/Shopify/sarama"
	"go.uber.org/zap"
)

type Storage struct {
	sarama.SyncProducer
	Topic  string
	Logger *zap.Logger
}

// PublishVerificationResult emits one event per finished verification,
// keyed by verification id so one verification stays in one partition.
func (s Storage) PublishVerificationResult(event entities.VerificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		s.Logger.With(zap.Error(err)).Error(constants.SERVICE_EVENTS_ERROR + "can not marshal event")
		return err
	}

	partition, offset, err := s.SendMessage(&sarama.ProducerMessage{
		Topic: s.Topic,
		Key:   sarama.StringEncoder(event.VerificationID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		s.Logger.With(zap.Error(err)).Error(constants.SERVICE_EVENTS_ERROR + "can not publish event")
		return err
	}

	s.Logger.With(zap.String("verification_id", event.VerificationID)).
		With(zap.Int32("partition", partition)).
		With(zap.Int64("offset", offset)).
		Info("verification_event_published")

	return nil
}

func NewConnection(brokers, topic string, logger *zap.Logger) (storage Storage, err error) {
	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	conf.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), conf)

	if err != nil {
		panic(err)
	}

	return Storage{
		SyncProducer: producer,
		Topic:        topic,
		Logger:       logger,
	}, err
}
