package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/survey-engine/models"
)

func surveyWith(questions ...models.Question) models.Survey {
	return models.Survey{ID: "s1", Title: "Survey", Questions: questions}
}

func TestMissingRequired(t *testing.T) {
	sv := surveyWith(
		models.Question{ID: "q1", Type: models.TypeShortText, Required: true},
		models.Question{ID: "q2", Type: models.TypeShortText},
		models.Question{ID: "q3", Type: models.TypeMultiChoice, Required: true},
	)

	assert.Equal(t, []string{"q1", "q3"}, MissingRequired(sv, map[string]models.Answer{}))
	assert.Equal(t, []string{"q1", "q3"}, MissingRequired(sv, map[string]models.Answer{
		"q1": models.Scalar(""),
		"q3": models.Multi(),
	}))
	assert.Equal(t, []string{}, MissingRequired(sv, map[string]models.Answer{
		"q1": models.Scalar("x"),
		"q3": models.Multi("A"),
	}))
}

func TestValidateAnswers(t *testing.T) {
	sv := surveyWith(models.Question{ID: "q1", Type: models.TypeShortText, Required: true})

	err := ValidateAnswers(sv, map[string]models.Answer{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"q1"}, verr.Missing)
	assert.Contains(t, err.Error(), "q1")

	assert.NoError(t, ValidateAnswers(sv, map[string]models.Answer{"q1": models.Scalar("x")}))
}

func TestValidateAnswers_ZeroIsAnAnswer(t *testing.T) {
	sv := surveyWith(models.Question{ID: "q1", Type: models.TypeNumber, Required: true})
	assert.NoError(t, ValidateAnswers(sv, map[string]models.Answer{"q1": models.Scalar("0")}))
}

func TestNormalizeAnswers(t *testing.T) {
	sv := surveyWith(
		models.Question{ID: "q1", Type: models.TypeSingleChoice},
		models.Question{ID: "q2", Type: models.TypeMultiChoice},
	)
	in := map[string]models.Answer{
		"q1":    models.Scalar("A"),
		"q2":    models.Multi("X", "Y"),
		"extra": models.Scalar("kept"),
	}

	out := NormalizeAnswers(sv, in)
	assert.Equal(t, models.Single("A"), out["q1"])
	assert.Equal(t, models.Multi("X", "Y"), out["q2"])
	assert.Equal(t, models.Scalar("kept"), out["extra"])
}
