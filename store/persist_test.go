package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/survey-engine/models"
)

func TestDecode_FillsMissingCollections(t *testing.T) {
	st, err := Decode([]byte(`{"surveys":[{"id":"s1","title":"T","questions":[{"id":"q1","type":"short-text"}]}]}`))
	require.NoError(t, err)

	assert.NotNil(t, st.Responses)
	assert.Equal(t, []string{}, st.Surveys[0].Questions[0].Options)
	assert.Equal(t, "", st.CurrentSurveyID)
}

func TestDecode_EmptyObject(t *testing.T) {
	st, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, models.EmptyState(), st)
}

func TestDecode_DropsDanglingCurrent(t *testing.T) {
	st, err := Decode([]byte(`{"surveys":[{"id":"s1"}],"currentSurveyId":"gone"}`))
	require.NoError(t, err)
	assert.Equal(t, "", st.CurrentSurveyID)
	assert.Equal(t, []models.Question{}, st.Surveys[0].Questions)
}

func TestDecode_Corrupt(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		``,
		`{"surveys":[{"id":"s1"},{"id":"s1"}]}`,
		`{"surveys":[{"title":"no id"}]}`,
		`{"surveys":"wrong"}`,
	} {
		_, err := Decode([]byte(raw))
		assert.ErrorIs(t, err, ErrCorruptState, raw)
	}
}

func TestEncodeDecode_PreservesAnswers(t *testing.T) {
	st := models.EmptyState()
	st.Surveys = append(st.Surveys, models.Survey{ID: "s1", Questions: []models.Question{}})
	st.Responses["s1"] = []models.Response{{
		ID:       "r1",
		SurveyID: "s1",
		Answers: map[string]models.Answer{
			"a": models.Scalar("text"),
			"b": models.Single("A"),
			"c": models.Multi("x", "y"),
		},
		SubmittedAt: t0,
	}}
	st.CurrentSurveyID = "s1"

	data, err := Encode(st)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, st, got)
}
