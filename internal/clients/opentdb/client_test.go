package opentdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/brainmon-api/internal/clients/opentdb"
	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

const successJSON = `{
  "response_code": 0,
  "results": [{
    "type": "multiple",
    "difficulty": "easy",
    "category": "Science &amp; Nature",
    "question": "What is &quot;H2O&quot; commonly called?",
    "correct_answer": "Water",
    "incorrect_answers": ["Salt", "Sugar", "Rock &amp; Roll"]
  }]
}`

type keepOrder struct{}

func (keepOrder) Shuffle([]string) error { return nil }

type ClientTestSuite struct {
	suite.Suite
	server    *httptest.Server
	lastQuery url.Values
	lastPath  string
	status    int
	body      string
	client    opentdb.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.body = successJSON
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastQuery = r.URL.Query()
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))

	client, err := opentdb.New(&opentdb.Config{BaseURL: s.server.URL})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetQuestion() {
	out, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{
		CategoryID: 17,
		Difficulty: "easy",
	})
	s.Require().NoError(err)

	s.Equal("/api.php", s.lastPath)
	s.Equal("1", s.lastQuery.Get("amount"))
	s.Equal("multiple", s.lastQuery.Get("type"))
	s.Equal("17", s.lastQuery.Get("category"))
	s.Equal("easy", s.lastQuery.Get("difficulty"))

	s.Require().Len(out.Results, 1)
	s.Equal("Water", out.Results[0].CorrectAnswer)
	s.Len(out.Results[0].IncorrectAnswers, 3)
}

func (s *ClientTestSuite) TestNoResults() {
	s.body = `{"response_code": 1, "results": []}`

	out, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{
		CategoryID: 20,
		Difficulty: "hard",
	})
	s.Require().NoError(err)
	s.Empty(out.Results)
}

func (s *ClientTestSuite) TestErrorCodes() {
	s.Run("invalid parameter", func() {
		s.body = `{"response_code": 2, "results": []}`
		_, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 99, Difficulty: "easy"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rate limited", func() {
		s.body = `{"response_code": 5, "results": []}`
		_, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 9, Difficulty: "easy"})
		s.True(errors.IsUnavailable(err))
	})

	s.Run("http failure", func() {
		s.status = http.StatusServiceUnavailable
		s.body = ""
		_, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 9, Difficulty: "easy"})
		s.True(errors.IsUnavailable(err))
	})
}

func (s *ClientTestSuite) TestValidation() {
	_, err := s.client.GetQuestion(context.Background(), nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{})
	s.True(errors.IsInvalidArgument(err))

	s.lastPath = ""
	_, err = s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 9, Difficulty: "extreme"})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.lastPath, "invalid difficulty must not reach the server")
}

func (s *ClientTestSuite) TestNullResultsAreDropped() {
	s.body = `{"response_code": 0, "results": [null]}`

	out, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 9, Difficulty: "easy"})
	s.Require().NoError(err)
	s.Empty(out.Results)
}

func (s *ClientTestSuite) TestToQuestionNil() {
	var q *opentdb.Question
	_, err := q.ToQuestion(keepOrder{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestToQuestion() {
	out, err := s.client.GetQuestion(context.Background(), &opentdb.GetQuestionInput{CategoryID: 17, Difficulty: "easy"})
	s.Require().NoError(err)

	q, err := out.Results[0].ToQuestion(keepOrder{})
	s.Require().NoError(err)

	s.Equal(`What is "H2O" commonly called?`, q.Text)
	s.Equal("Science & Nature", q.Category)
	s.Equal("easy", q.Difficulty)
	s.Equal([]string{"Salt", "Sugar", "Rock & Roll", "Water"}, q.Answers)
	s.True(q.IsCorrect("Water"))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
