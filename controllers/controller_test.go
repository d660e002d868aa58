package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/survey-engine/storage"
	"github.com/vnkhanh/survey-engine/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer nối handler trực tiếp, không qua AuthJWT.
func newTestServer(t *testing.T) (*Controller, *gin.Engine) {
	t.Helper()
	require.NoError(t, RegisterValidators())

	ctl := New(store.New(nil), storage.NewMemoryKV(), AuthConfig{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	})

	r := gin.New()
	r.GET("/health", ctl.HealthCheck)
	r.POST("/login", ctl.Login)
	r.POST("/google/login", ctl.GoogleLogin)
	r.GET("/surveys", ctl.ListSurveys)
	r.POST("/surveys", ctl.CreateSurvey)
	r.GET("/surveys/current", ctl.GetCurrentSurvey)
	r.PUT("/surveys/current", ctl.SetCurrentSurvey)
	r.POST("/surveys/current/questions", ctl.AddQuestion)
	r.PUT("/surveys/current/questions/reorder", ctl.ReorderQuestions)
	r.GET("/surveys/:id", ctl.GetSurvey)
	r.PUT("/surveys/:id", ctl.UpdateSurvey)
	r.DELETE("/surveys/:id", ctl.DeleteSurvey)
	r.GET("/surveys/:id/responses", ctl.ListResponses)
	r.GET("/surveys/:id/dashboard", ctl.GetDashboard)
	r.GET("/surveys/:id/export", ctl.ExportResponses)
	r.PUT("/questions/:id", ctl.UpdateQuestion)
	r.DELETE("/questions/:id", ctl.DeleteQuestion)
	r.GET("/public/surveys/:id", ctl.GetPublicSurvey)
	r.POST("/public/surveys/:id/responses", ctl.SubmitResponse)
	return ctl, r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
