package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/models"
	"github.com/vnkhanh/survey-engine/report"
	"github.com/vnkhanh/survey-engine/store"
)

// GET /api/public/surveys/:id: form cho người trả lời.
func (ctl *Controller) GetPublicSurvey(c *gin.Context) {
	sv, ok := ctl.Store.Survey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          sv.ID,
		"title":       sv.Title,
		"description": sv.Description,
		"questions":   sv.Questions,
	})
}

type submitReq struct {
	Answers map[string]models.Answer `json:"answers"`
}

// POST /api/public/surveys/:id/responses
func (ctl *Controller) SubmitResponse(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dữ liệu gửi không hợp lệ", "error": err.Error()})
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]models.Answer{}
	}

	resp, err := ctl.Store.SubmitResponse(c.Request.Context(), c.Param("id"), req.Answers)
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrSurveyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Còn câu hỏi bắt buộc chưa trả lời",
			"missing": verr.Missing,
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể lưu phản hồi"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Gửi khảo sát thành công",
		"id":           resp.ID,
		"submitted_at": resp.SubmittedAt,
	})
}

// GET /api/surveys/:id/responses
func (ctl *Controller) ListResponses(c *gin.Context) {
	id := c.Param("id")
	responses, ok := ctl.Store.Responses(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"survey_id": id,
		"total":     len(responses),
		"responses": responses,
	})
}

// GET /api/surveys/:id/dashboard
func (ctl *Controller) GetDashboard(c *gin.Context) {
	id := c.Param("id")
	sv, ok := ctl.Store.Survey(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	responses, _ := ctl.Store.Responses(id)
	c.JSON(http.StatusOK, report.Summarize(sv, responses))
}
