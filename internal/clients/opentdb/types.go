package opentdb

// Question is one result from api.php. Text fields are HTML-escaped.
type Question struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type response struct {
	ResponseCode int         `json:"response_code"`
	Results      []*Question `json:"results"`
}
