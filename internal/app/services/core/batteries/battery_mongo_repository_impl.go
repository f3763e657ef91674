package batteries

import (
	"context"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BatteryMongoRepository struct {
	Collection *mongo.Collection
}

func NewBatteryMongoRepository(db *mongo.Client, dbName string) contracts.BatteryRepository {
	return &BatteryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBatteries),
	}
}

func (r *BatteryMongoRepository) Insert(ctx context.Context, battery *models.Battery) (string, error) {
	_, err := r.Collection.InsertOne(ctx, battery)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return battery.ID, nil
}

func (r *BatteryMongoRepository) FindByID(ctx context.Context, batteryID string) (*models.Battery, error) {
	var battery models.Battery
	err := r.Collection.FindOne(ctx, bson.M{"_id": batteryID}).Decode(&battery)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &battery, nil
}

func (r *BatteryMongoRepository) Update(ctx context.Context, battery *models.Battery) error {
	filter := bson.M{"_id": battery.ID}
	update := bson.M{"$set": battery}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
