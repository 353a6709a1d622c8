package testutils

import (
	"github.com/KirkDiggler/brainmon-api/internal/clients/opentdb"
)

const (
	// TestCorrectAnswer is the right answer in CreateTestTrivia
	TestCorrectAnswer = "Paris"
	// TestWrongAnswer is one of the decoys in CreateTestTrivia
	TestWrongAnswer = "Lyon"
)

// CreateTestTrivia returns a single-question OpenTDB result
func CreateTestTrivia(difficulty string) *opentdb.GetQuestionOutput {
	return &opentdb.GetQuestionOutput{
		Results: []*opentdb.Question{
			{
				Type:             "multiple",
				Difficulty:       difficulty,
				Category:         "Geography",
				Question:         "What is the capital of France?",
				CorrectAnswer:    TestCorrectAnswer,
				IncorrectAnswers: []string{TestWrongAnswer, "Nice", "Lille"},
			},
		},
	}
}

// CreateEmptyTrivia is the response for a category with no questions
func CreateEmptyTrivia() *opentdb.GetQuestionOutput {
	return &opentdb.GetQuestionOutput{Results: []*opentdb.Question{}}
}
