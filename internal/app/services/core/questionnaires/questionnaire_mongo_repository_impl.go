package questionnaires

import (
	"context"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *QuestionnaireMongoRepository) Insert(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) (string, error) {
	_, err := r.Collection.InsertOne(ctx, questionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return questionnaire.ID, nil
}

func (r *QuestionnaireMongoRepository) FindByID(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error) {
	var questionnaire questionnaire_dto.Questionnaire
	err := r.Collection.FindOne(ctx, bson.M{"_id": questionnaireID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) FindAll(ctx context.Context) ([]questionnaire_dto.Questionnaire, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questionnaires := make([]questionnaire_dto.Questionnaire, 0)
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, nil
}

func (r *QuestionnaireMongoRepository) Update(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) error {
	filter := bson.M{"_id": questionnaire.ID}
	update := bson.M{"$set": questionnaire}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionnaireMongoRepository) DeleteByID(ctx context.Context, questionnaireID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": questionnaireID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
