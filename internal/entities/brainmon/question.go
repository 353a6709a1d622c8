package brainmon

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Question is the trivia challenge guarding the current encounter
type Question struct {
	Text          string   `json:"text"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correct_answer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// Shuffler reorders answers in place
type Shuffler interface {
	Shuffle(answers []string) error
}

// NewQuestion decodes the raw trivia fields and shuffles the candidate answers.
// The answer set is the incorrect answers followed by the correct one before
// shuffling.
func NewQuestion(text, correct string, incorrect []string, shuffler Shuffler) (*Question, error) {
	answers := make([]string, 0, len(incorrect)+1)
	for _, a := range incorrect {
		answers = append(answers, DecodeHTML(a))
	}
	answers = append(answers, DecodeHTML(correct))

	if shuffler != nil {
		if err := shuffler.Shuffle(answers); err != nil {
			return nil, err
		}
	}

	return &Question{
		Text:          DecodeHTML(text),
		Answers:       answers,
		CorrectAnswer: DecodeHTML(correct),
	}, nil
}

// IsCorrect compares a selected answer with the decoded correct answer
func (q *Question) IsCorrect(selected string) bool {
	return selected == q.CorrectAnswer
}

// DecodeHTML renders trivia markup to plain text: entities are resolved,
// tags dropped and <br> becomes a newline.
func DecodeHTML(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return s
	}

	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return html.UnescapeString(s)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Br {
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	return b.String()
}
