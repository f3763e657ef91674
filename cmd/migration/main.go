package main

import (
	"context"
	"log"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/drivers/database"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/questionnaire_dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the questionnaire collection with a triage instrument so a fresh
// environment has something to answer. Upserts by ID, safe to run again.
func main() {
	driverConfig := config.NewDriverConfig()
	mongoClient := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := mongoClient.
		Database(driverConfig.MongoDB.DbName).
		Collection(constvars.MongoCollectionQuestionnaires)

	questionnaire := seedQuestionnaire()

	filter := bson.M{"_id": questionnaire.ID}
	update := bson.M{"$set": questionnaire}
	result, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Fatalf("Error seeding questionnaire: %v", err)
	}

	if result.UpsertedCount > 0 {
		log.Printf("Seeded questionnaire %s", questionnaire.ID)
	} else {
		log.Printf("Questionnaire %s already present, refreshed", questionnaire.ID)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}
}

func seedQuestionnaire() *questionnaire_dto.Questionnaire {
	return &questionnaire_dto.Questionnaire{
		ID:          "seed-triagem-inicial",
		Title:       "Triagem Inicial",
		Description: "Instrumento de triagem com sessoes condicionais.",
		Sessions: []questionnaire_dto.Session{
			{
				ID:       "sessao-sintomas",
				Title:    "Sintomas",
				Position: 1,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "pergunta-dor",
						Text:     "Sente dor com frequencia?",
						Type:     questionnaire_dto.AnswerTypeSingleChoice,
						Position: 1,
						Alternatives: []questionnaire_dto.Alternative{
							{ID: "alt-dor-sim", Text: "Sim", Value: 2, Position: 1},
							{ID: "alt-dor-as-vezes", Text: "As vezes", Value: 1, Position: 2},
							{ID: "alt-dor-nao", Text: "Nao", Value: 0, Position: 3},
						},
					},
					{
						ID:       "pergunta-sono",
						Text:     "Quantas horas dorme por noite?",
						Type:     questionnaire_dto.AnswerTypeNumber,
						Position: 2,
					},
				},
			},
			{
				ID:       "sessao-dor-detalhe",
				Title:    "Detalhamento da Dor",
				Position: 2,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "pergunta-dor-local",
						Text:     "Onde a dor se concentra?",
						Type:     questionnaire_dto.AnswerTypeFreeText,
						Position: 1,
					},
				},
				Rules: []questionnaire_dto.VisibilityRule{
					{
						Kind:           questionnaire_dto.RuleKindAnswerMatch,
						QuestionID:     "pergunta-dor",
						AlternativeIDs: []string{"alt-dor-sim", "alt-dor-as-vezes"},
						Combination:    questionnaire_dto.LogicOr,
					},
				},
				RuleCombination: questionnaire_dto.LogicAnd,
			},
			{
				ID:       "sessao-acompanhamento",
				Title:    "Acompanhamento",
				Position: 3,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "pergunta-retorno",
						Text:     "Deseja agendar retorno?",
						Type:     questionnaire_dto.AnswerTypeSingleChoice,
						Position: 1,
						Alternatives: []questionnaire_dto.Alternative{
							{ID: "alt-retorno-sim", Text: "Sim", Value: 0, Position: 1},
							{ID: "alt-retorno-nao", Text: "Nao", Value: 0, Position: 2},
						},
					},
				},
				Rules: []questionnaire_dto.VisibilityRule{
					{
						Kind:        questionnaire_dto.RuleKindScoreRange,
						QuestionIDs: []string{"pergunta-dor"},
						MinScore:    1,
						MaxScore:    2,
					},
					{
						Kind:  questionnaire_dto.RuleKindRoleMembership,
						Roles: []questionnaire_dto.Role{questionnaire_dto.RolePatient},
					},
				},
				RuleCombination: questionnaire_dto.LogicAnd,
			},
		},
	}
}
