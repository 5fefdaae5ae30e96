package application

import (
	eBankGw "c2p-system/domain/entities/bank_gateway"
	"c2p-system/domain/repositories"
	"c2p-system/infrastructure/database_mgo"
	"c2p-system/infrastructure/database_mgo/verifications"
	"c2p-system/infrastructure/kafka"
	"c2p-system/infrastructure/service/bank_service"
	"c2p-system/utils/configs"
	"c2p-system/utils/gpooling"
	"c2p-system/utils/retry"

	"go.uber.org/zap"
)

type VerificationApplication struct {
	Config                 *configs.Config
	Logger                 *zap.Logger
	IPool                  gpooling.IPool
	BankServiceRepository  repositories.BankServiceRepository
	VerificationRepository repositories.VerificationRepository
	Events                 repositories.EventProducer
	Retry                  retry.Config
}

func NewVerificationApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *VerificationApplication {
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	credentials := config.Mercantil.ActiveCredentials()
	bankService := bank_service.NewRepoImpl(eBankGw.Credentials{
		ClientID:   credentials.ClientID,
		MerchantID: credentials.MerchantID,
		SecretKey:  credentials.SecretKey,
		Endpoint:   credentials.Endpoint,
	}, logger)

	if !bankService.ValidateCredentials() {
		panic("mercantil credentials are incomplete for environment " + config.Mercantil.Environment)
	}

	events, err := kafka.NewConnection(config.KafkaConfig.Brokers, config.KafkaConfig.VerificationTopic, logger)
	if err != nil {
		panic(err)
	}

	application := &VerificationApplication{
		Config:                 config,
		Logger:                 logger,
		IPool:                  pool,
		BankServiceRepository:  bankService,
		VerificationRepository: verifications.NewVerificationCollectionImpl(db, config),
		Events:                 events,
		Retry:                  retry.DefaultConfig(),
	}

	return application
}
