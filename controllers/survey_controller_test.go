package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/survey-engine/models"
)

func TestCreateSurvey_EmptyBodyUsesDefaults(t *testing.T) {
	_, r := newTestServer(t)

	w := do(r, http.MethodPost, "/surveys", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	sv := decode[models.Survey](t, w)
	assert.NotEmpty(t, sv.ID)
	assert.Equal(t, models.DefaultSurveyTitle, sv.Title)
	assert.Equal(t, models.StatusDraft, sv.Status)
	assert.Empty(t, sv.Questions)
}

func TestCreateSurvey_BecomesCurrent(t *testing.T) {
	_, r := newTestServer(t)

	sv := decode[models.Survey](t, do(r, http.MethodPost, "/surveys", map[string]string{"title": "Lunch"}))
	assert.Equal(t, "Lunch", sv.Title)

	cur := decode[struct {
		Survey *models.Survey `json:"survey"`
	}](t, do(r, http.MethodGet, "/surveys/current", nil))
	require.NotNil(t, cur.Survey)
	assert.Equal(t, sv.ID, cur.Survey.ID)
}

func TestCreateSurvey_MalformedBody(t *testing.T) {
	_, r := newTestServer(t)
	w := do(r, http.MethodPost, "/surveys", "{bad")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListSurveys_IncludesResponseCount(t *testing.T) {
	ctl, r := newTestServer(t)
	sv := decode[models.Survey](t, do(r, http.MethodPost, "/surveys", nil))
	ctl.Store.RecordResponse(context.Background(), sv.ID, map[string]models.Answer{})

	w := do(r, http.MethodGet, "/surveys", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Surveys []struct {
			ID            string `json:"id"`
			ResponseCount int    `json:"response_count"`
		} `json:"surveys"`
		CurrentSurveyID string `json:"current_survey_id"`
	}](t, w)
	require.Len(t, body.Surveys, 1)
	assert.Equal(t, 1, body.Surveys[0].ResponseCount)
	assert.Equal(t, sv.ID, body.CurrentSurveyID)
}

func TestUpdateSurvey(t *testing.T) {
	_, r := newTestServer(t)
	sv := decode[models.Survey](t, do(r, http.MethodPost, "/surveys", nil))

	w := do(r, http.MethodPut, "/surveys/"+sv.ID, map[string]string{"title": "Renamed", "status": "published"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[models.Survey](t, w)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, models.StatusPublished, got.Status)

	w = do(r, http.MethodPut, "/surveys/"+sv.ID, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPut, "/surveys/"+sv.ID, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/surveys/missing", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSurvey_ClearsCurrent(t *testing.T) {
	_, r := newTestServer(t)
	sv := decode[models.Survey](t, do(r, http.MethodPost, "/surveys", nil))

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/surveys/"+sv.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/surveys/"+sv.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/surveys/"+sv.ID, nil).Code)

	w := do(r, http.MethodGet, "/surveys/current", nil)
	assert.JSONEq(t, `{"survey":null}`, w.Body.String())
}

func TestSetCurrentSurvey(t *testing.T) {
	_, r := newTestServer(t)
	first := decode[models.Survey](t, do(r, http.MethodPost, "/surveys", nil))
	decode[models.Survey](t, do(r, http.MethodPost, "/surveys", nil))

	w := do(r, http.MethodPut, "/surveys/current", map[string]string{"id": first.ID})
	require.Equal(t, http.StatusOK, w.Code)
	cur := decode[struct {
		Survey *models.Survey `json:"survey"`
	}](t, w)
	require.NotNil(t, cur.Survey)
	assert.Equal(t, first.ID, cur.Survey.ID)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/surveys/current", map[string]string{"id": "nope"}).Code)

	w = do(r, http.MethodPut, "/surveys/current", `{"id":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"survey":null}`, w.Body.String())
}
