// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/brainmon-api/internal/clients/opentdb"
	opentdbmock "github.com/KirkDiggler/brainmon-api/internal/clients/opentdb/mock"
	"github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/brainmon-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/services/collection"
	collectionmock "github.com/KirkDiggler/brainmon-api/internal/services/collection/mock"
)

// ExpectOwned sets up the collection listing used to filter the species pool
func ExpectOwned(mockCollection *collectionmock.MockService, owned ...*brainmon.Monster) *gomock.Call {
	if owned == nil {
		owned = []*brainmon.Monster{}
	}
	return mockCollection.EXPECT().
		List(gomock.Any(), &collection.ListInput{}).
		Return(&collection.ListOutput{Monsters: owned}, nil)
}

// ExpectPokemon sets up a single creature lookup
func ExpectPokemon(
	mockClient *pokeapimock.MockClient, species string, pokemon *pokeapi.Pokemon, err error,
) *gomock.Call {
	return mockClient.EXPECT().
		GetPokemon(gomock.Any(), species).
		Return(pokemon, err)
}

// ExpectTrivia sets up a single trivia lookup
func ExpectTrivia(
	mockClient *opentdbmock.MockClient, categoryID int, difficulty string,
	out *opentdb.GetQuestionOutput, err error,
) *gomock.Call {
	return mockClient.EXPECT().
		GetQuestion(gomock.Any(), &opentdb.GetQuestionInput{
			CategoryID: categoryID,
			Difficulty: difficulty,
		}).
		Return(out, err)
}
