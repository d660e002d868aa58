package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() State {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return State{
		Surveys: []Survey{{
			ID:        "s1",
			Title:     "Feedback",
			Questions: []Question{{ID: "q1", Type: TypeMultiChoice, Title: "Pick", Options: []string{"A", "B"}}},
			Status:    StatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Responses: map[string][]Response{
			"s1": {{ID: "r1", SurveyID: "s1", Answers: map[string]Answer{"q1": Multi("A")}, SubmittedAt: now}},
		},
		CurrentSurveyID: "s1",
	}
}

func TestState_CurrentFollowsSurveyList(t *testing.T) {
	st := sampleState()
	cur := st.Current()
	require.NotNil(t, cur)

	cur.Title = "Renamed"
	assert.Equal(t, "Renamed", st.Surveys[0].Title)

	st.CurrentSurveyID = "missing"
	assert.Nil(t, st.Current())

	st.CurrentSurveyID = ""
	assert.Nil(t, st.Current())
}

func TestState_CloneIsDeep(t *testing.T) {
	st := sampleState()
	cp := st.Clone()
	require.Equal(t, st, cp)

	cp.Surveys[0].Questions[0].Options[0] = "Z"
	cp.Responses["s1"][0].Answers["q1"].Choices[0] = "Z"
	cp.Surveys[0].Title = "Other"

	assert.Equal(t, "A", st.Surveys[0].Questions[0].Options[0])
	assert.Equal(t, "A", st.Responses["s1"][0].Answers["q1"].Choices[0])
	assert.Equal(t, "Feedback", st.Surveys[0].Title)
}

func TestSurveyStatus_Valid(t *testing.T) {
	assert.True(t, StatusPublished.Valid())
	assert.False(t, SurveyStatus("archived").Valid())
}
