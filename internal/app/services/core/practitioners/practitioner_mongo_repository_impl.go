package practitioners

import (
	"context"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PractitionerMongoRepository struct {
	Collection *mongo.Collection
}

func NewPractitionerMongoRepository(db *mongo.Client, dbName string) contracts.PractitionerRepository {
	return &PractitionerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPractitioners),
	}
}

func (r *PractitionerMongoRepository) Insert(ctx context.Context, practitioner *models.Practitioner) (string, error) {
	_, err := r.Collection.InsertOne(ctx, practitioner)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return practitioner.ID, nil
}

func (r *PractitionerMongoRepository) FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	err := r.Collection.FindOne(ctx, bson.M{"_id": practitionerID}).Decode(&practitioner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &practitioner, nil
}

func (r *PractitionerMongoRepository) FindAll(ctx context.Context) ([]models.Practitioner, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	practitioners := make([]models.Practitioner, 0)
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return practitioners, nil
}

func (r *PractitionerMongoRepository) Update(ctx context.Context, practitioner *models.Practitioner) error {
	filter := bson.M{"_id": practitioner.ID}
	update := bson.M{"$set": practitioner}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
