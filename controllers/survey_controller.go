package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/models"
	"github.com/vnkhanh/survey-engine/store"
)

type surveyListItem struct {
	models.Survey
	ResponseCount int `json:"response_count"`
}

// GET /api/surveys
func (ctl *Controller) ListSurveys(c *gin.Context) {
	surveys := ctl.Store.Surveys()
	items := make([]surveyListItem, 0, len(surveys))
	for _, sv := range surveys {
		items = append(items, surveyListItem{Survey: sv, ResponseCount: ctl.Store.ResponseCount(sv.ID)})
	}
	resp := gin.H{"surveys": items}
	if cur, ok := ctl.Store.Current(); ok {
		resp["current_survey_id"] = cur.ID
	}
	c.JSON(http.StatusOK, resp)
}

type createSurveyReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// POST /api/surveys: body có thể rỗng, khi đó dùng tiêu đề mặc định.
func (ctl *Controller) CreateSurvey(c *gin.Context) {
	var req createSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	sv := ctl.Store.CreateSurvey(c.Request.Context(), req.Title, req.Description)
	c.JSON(http.StatusCreated, sv)
}

// GET /api/surveys/:id
func (ctl *Controller) GetSurvey(c *gin.Context) {
	sv, ok := ctl.Store.Survey(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	c.JSON(http.StatusOK, sv)
}

type updateSurveyReq struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.SurveyStatus `json:"status" binding:"omitempty,survey_status"`
}

// PUT /api/surveys/:id
func (ctl *Controller) UpdateSurvey(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ctl.Store.Survey(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}

	var req updateSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}
	if req.Title == nil && req.Description == nil && req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Không có gì để cập nhật"})
		return
	}

	ctl.Store.UpdateSurvey(c.Request.Context(), id, store.SurveyPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	sv, _ := ctl.Store.Survey(id)
	c.JSON(http.StatusOK, sv)
}

// DELETE /api/surveys/:id: phản hồi cũ được giữ lại nhưng không truy cập được nữa.
func (ctl *Controller) DeleteSurvey(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ctl.Store.Survey(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	ctl.Store.DeleteSurvey(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/surveys/current
func (ctl *Controller) GetCurrentSurvey(c *gin.Context) {
	sv, ok := ctl.Store.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"survey": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": sv})
}

type setCurrentReq struct {
	ID *string `json:"id"`
}

// PUT /api/surveys/current: {"id": null} để bỏ chọn.
func (ctl *Controller) SetCurrentSurvey(c *gin.Context) {
	var req setCurrentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	id := ""
	if req.ID != nil {
		id = *req.ID
	}
	if id != "" {
		if _, ok := ctl.Store.Survey(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
			return
		}
	}

	ctl.Store.SetCurrentSurvey(c.Request.Context(), id)
	ctl.GetCurrentSurvey(c)
}
