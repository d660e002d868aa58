package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/survey-engine/models"
)

func responsesFor(qid string, answers ...models.Answer) []models.Response {
	out := make([]models.Response, 0, len(answers))
	for i, a := range answers {
		out = append(out, models.Response{
			ID:          string(rune('a' + i)),
			SurveyID:    "s1",
			Answers:     map[string]models.Answer{qid: a},
			SubmittedAt: time.Date(2024, 1, 1, 10, i, 0, 0, time.UTC),
		})
	}
	return out
}

func TestSummarizeQuestion_Rating(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeRating}
	got := SummarizeQuestion(q, responsesFor("q1", models.Scalar("3"), models.Scalar("4"), models.Scalar("5")))

	assert.Equal(t, KindNumeric, got.Kind)
	assert.Equal(t, 4.0, got.Average)
	assert.Equal(t, 3, got.Count)
}

func TestSummarizeQuestion_NumericSkipsInvalid(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeNumber}
	got := SummarizeQuestion(q, responsesFor("q1",
		models.Scalar("1"), models.Scalar("abc"), models.Scalar(""), models.Scalar("2"), models.Multi("9"), models.Scalar("0"),
	))

	assert.Equal(t, 1.0, got.Average)
	assert.Equal(t, 3, got.Count)
}

func TestSummarizeQuestion_NumericRoundsToOneDecimal(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeRating}
	got := SummarizeQuestion(q, responsesFor("q1", models.Scalar("1"), models.Scalar("2"), models.Scalar("2")))
	assert.Equal(t, 1.7, got.Average)
}

func TestSummarizeQuestion_NoResponses(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeRating}
	got := SummarizeQuestion(q, nil)
	assert.Equal(t, 0.0, got.Average)
	assert.Equal(t, 0, got.Count)
}

func TestSummarizeQuestion_SingleChoice(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeSingleChoice, Options: []string{"A", "B", "C"}}
	got := SummarizeQuestion(q, responsesFor("q1", models.Single("A"), models.Single("A"), models.Single("B")))

	assert.Equal(t, KindCategorical, got.Kind)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, got.Options)
	assert.Equal(t, 3, got.Count)
}

func TestSummarizeQuestion_MultiChoice(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeMultiChoice, Options: []string{"A", "B"}}
	got := SummarizeQuestion(q, responsesFor("q1",
		models.Multi("A", "B"), models.Multi("A"), models.Scalar("B"), models.Multi(),
	))

	assert.Equal(t, map[string]int{"A": 2, "B": 1}, got.Options)
	assert.Equal(t, 2, got.Count)
}

func TestSummarizeQuestion_TextCountsAnswers(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeLongText}
	got := SummarizeQuestion(q, responsesFor("q1", models.Scalar("hi"), models.Scalar(""), models.Scalar("there")))

	assert.Equal(t, KindCount, got.Kind)
	assert.Equal(t, 2, got.Count)
	assert.Nil(t, got.Options)
}

func TestSummarize(t *testing.T) {
	sv := models.Survey{
		ID:    "s1",
		Title: "Feedback",
		Questions: []models.Question{
			{ID: "q1", Type: models.TypeRating},
			{ID: "q2", Type: models.TypeEmail},
		},
	}

	empty := Summarize(sv, nil)
	assert.Equal(t, 0, empty.TotalResponses)
	assert.Equal(t, 0, empty.CompletionRate)
	assert.Len(t, empty.Questions, 2)

	ov := Summarize(sv, responsesFor("q1", models.Scalar("5")))
	assert.Equal(t, 1, ov.TotalResponses)
	assert.Equal(t, 2, ov.QuestionCount)
	assert.Equal(t, 100, ov.CompletionRate)
	assert.Equal(t, "q1", ov.Questions[0].QuestionID)
	assert.Equal(t, 5.0, ov.Questions[0].Average)
	assert.Equal(t, 0, ov.Questions[1].Count)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4", 4, true},
		{" 2.5 ", 2.5, true},
		{"-1", -1, true},
		{"1e2", 100, true},
		{"0x10", 16, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"0x1_0", 0, false},
		{"Infinity", 0, false},
		{"-inf", 0, false},
		{"NaN", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSummarizeQuestion_NumericAcceptsPrefixedIntegers(t *testing.T) {
	q := models.Question{ID: "q1", Type: models.TypeNumber}
	got := SummarizeQuestion(q, responsesFor("q1", models.Scalar("0x10"), models.Scalar("Infinity"), models.Scalar("4")))

	assert.Equal(t, 10.0, got.Average)
	assert.Equal(t, 2, got.Count)
}
