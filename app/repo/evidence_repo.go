package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Frezz12/AchStudentsBackend/app/model"
)

type EvidenceRepository interface {
	Add(e model.Evidence) error
	FindByAward(awardUUID string) ([]model.Evidence, error)
	DeleteByAward(awardUUID string) error
}

// EvidenceRepo stores evidence attachment documents on the Mongo side,
// keyed by the award record's uuid.
type EvidenceRepo struct {
	mongoDB *mongo.Database
}

func NewEvidenceRepo(mongoDB *mongo.Database) *EvidenceRepo {
	return &EvidenceRepo{mongoDB: mongoDB}
}

func (r *EvidenceRepo) collection() *mongo.Collection {
	return r.mongoDB.Collection("evidence")
}

func (r *EvidenceRepo) Add(e model.Evidence) error {
	_, err := r.collection().InsertOne(context.TODO(), e)
	return err
}

func (r *EvidenceRepo) FindByAward(awardUUID string) ([]model.Evidence, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.collection().Find(context.TODO(), bson.M{"awardUuid": awardUUID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	evidence := []model.Evidence{}
	for cursor.Next(context.TODO()) {
		var e model.Evidence
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		evidence = append(evidence, e)
	}
	return evidence, cursor.Err()
}

func (r *EvidenceRepo) DeleteByAward(awardUUID string) error {
	_, err := r.collection().DeleteMany(context.TODO(), bson.M{"awardUuid": awardUUID})
	return err
}
