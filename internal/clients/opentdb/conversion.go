package opentdb

import (
	"github.com/KirkDiggler/brainmon-api/internal/entities/brainmon"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

// ToQuestion decodes the result and shuffles its answers
func (q *Question) ToQuestion(shuffler brainmon.Shuffler) (*brainmon.Question, error) {
	if q == nil {
		return nil, errors.InvalidArgument("trivia question is nil")
	}
	out, err := brainmon.NewQuestion(q.Question, q.CorrectAnswer, q.IncorrectAnswers, shuffler)
	if err != nil {
		return nil, err
	}
	out.Category = brainmon.DecodeHTML(q.Category)
	out.Difficulty = q.Difficulty
	return out, nil
}
