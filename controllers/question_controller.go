package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/models"
	"github.com/vnkhanh/survey-engine/store"
)

type addQuestionReq struct {
	Type    models.QuestionType `json:"type"    binding:"required,question_type"`
	Title   *string             `json:"title"`
	Options []string            `json:"options"`
}

// POST /api/surveys/current/questions
func (ctl *Controller) AddQuestion(c *gin.Context) {
	var req addQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	q, ok := ctl.Store.AddQuestion(c.Request.Context(), req.Type, req.Title, req.Options)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"message": "Chưa chọn khảo sát để thêm câu hỏi"})
		return
	}
	cur, _ := ctl.Store.Current()
	c.JSON(http.StatusCreated, gin.H{"question": q, "survey_id": cur.ID})
}

type updateQuestionReq struct {
	Type     *models.QuestionType `json:"type" binding:"omitempty,question_type"`
	Title    *string              `json:"title"`
	Required *bool                `json:"required"`
	Options  *[]string            `json:"options"`
}

// PUT /api/questions/:id: chỉ tìm trong survey đang chọn.
func (ctl *Controller) UpdateQuestion(c *gin.Context) {
	qid := c.Param("id")
	if !ctl.currentHasQuestion(qid) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Câu hỏi không tồn tại trong khảo sát đang chọn"})
		return
	}

	var req updateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	ctl.Store.UpdateQuestion(c.Request.Context(), store.QuestionPatch{
		ID:       qid,
		Type:     req.Type,
		Title:    req.Title,
		Required: req.Required,
		Options:  req.Options,
	})

	cur, _ := ctl.Store.Current()
	if i := cur.QuestionIndex(qid); i >= 0 {
		c.JSON(http.StatusOK, gin.H{"question": cur.Questions[i]})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/questions/:id
func (ctl *Controller) DeleteQuestion(c *gin.Context) {
	qid := c.Param("id")
	if !ctl.currentHasQuestion(qid) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Câu hỏi không tồn tại trong khảo sát đang chọn"})
		return
	}
	ctl.Store.DeleteQuestion(c.Request.Context(), qid)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type reorderReq struct {
	Order []string `json:"order" binding:"required,min=1,dive,required"`
}

// PUT /api/surveys/current/questions/reorder
func (ctl *Controller) ReorderQuestions(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload không hợp lệ", "error": err.Error()})
		return
	}

	cur, ok := ctl.Store.Current()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"message": "Chưa chọn khảo sát"})
		return
	}
	for _, id := range req.Order {
		if cur.QuestionIndex(id) < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Danh sách order chứa câu hỏi không thuộc khảo sát"})
			return
		}
	}

	ctl.Store.ReorderQuestions(c.Request.Context(), req.Order)
	cur, _ = ctl.Store.Current()
	c.JSON(http.StatusOK, gin.H{"questions": cur.Questions})
}

func (ctl *Controller) currentHasQuestion(qid string) bool {
	cur, ok := ctl.Store.Current()
	return ok && cur.QuestionIndex(qid) >= 0
}
