package verifications

import (
	"context"

	"c2p-system/domain/entities"
	"c2p-system/utils/configs"
	"c2p-system/utils/helpers"
	"c2p-system/utils/mongoindex"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VerificationCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func (v *VerificationCollection) Create(ctx context.Context, entity *entities.VerificationEntity) error {
	now := helpers.GetCurrentTime()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	_, err := v.collection.InsertOne(ctx, entity)
	return err
}

func (v *VerificationCollection) FindByVerificationID(ctx context.Context, verificationID string) (res *entities.VerificationEntity, err error) {
	err = v.collection.FindOne(ctx, bson.M{"verification_id": verificationID}).Decode(&res)
	return
}

// FindByReference returns every attempt recorded against a payment
// reference, newest first.
func (v *VerificationCollection) FindByReference(ctx context.Context, reference string) (res []entities.VerificationEntity, err error) {
	cur, err := v.collection.Find(ctx, bson.M{"reference": reference},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return
	}

	for cur.Next(ctx) {
		var entity entities.VerificationEntity

		err = cur.Decode(&entity)
		if err != nil {
			continue
		}

		res = append(res, entity)
	}

	return res, nil
}

func (v *VerificationCollection) UpdateStatus(ctx context.Context, verificationID string, status entities.VerificationStatus) error {
	_, err := v.collection.UpdateOne(ctx, bson.M{"verification_id": verificationID}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": helpers.GetCurrentTime(),
		},
	})
	return err
}

func NewVerificationCollectionImpl(db *mongo.Client, conf *configs.Config) *VerificationCollection {
	c := db.Database(conf.MongoDBName).Collection("verifications")

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "verification_id", Value: -1},
	}, true)

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "reference", Value: -1},
	}, false)

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "created_at", Value: -1},
	}, false)

	return &VerificationCollection{
		conf:       conf,
		collection: c,
	}
}
