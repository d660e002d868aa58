package store

import (
	"time"

	"github.com/vnkhanh/survey-engine/models"
)

// Command là một lệnh biến đổi state. Id và thời điểm được gán sẵn
// trước khi apply nên Apply luôn tất định.
type Command interface {
	Name() string
	apply(st *models.State)
}

// Apply trả về state mới; state đầu vào không bị sửa.
func Apply(st models.State, cmd Command) models.State {
	next := st.Clone()
	cmd.apply(&next)
	return next
}

type SurveyPatch struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.SurveyStatus `json:"status"`
}

type QuestionPatch struct {
	ID       string               `json:"id"`
	Type     *models.QuestionType `json:"type"`
	Title    *string              `json:"title"`
	Required *bool                `json:"required"`
	Options  *[]string            `json:"options"`
}

type CreateSurvey struct {
	ID          string
	Title       *string
	Description *string
	At          time.Time
}

func (CreateSurvey) Name() string { return "create_survey" }

func (c CreateSurvey) apply(st *models.State) {
	sv := models.Survey{
		ID:          c.ID,
		Title:       models.DefaultSurveyTitle,
		Description: models.DefaultSurveyDescription,
		Questions:   []models.Question{},
		Status:      models.StatusDraft,
		CreatedAt:   c.At,
		UpdatedAt:   c.At,
	}
	if c.Title != nil && *c.Title != "" {
		sv.Title = *c.Title
	}
	if c.Description != nil {
		sv.Description = *c.Description
	}
	st.Surveys = append(st.Surveys, sv)
	st.CurrentSurveyID = sv.ID
}

type UpdateSurvey struct {
	ID    string
	Patch SurveyPatch
	At    time.Time
}

func (UpdateSurvey) Name() string { return "update_survey" }

func (c UpdateSurvey) apply(st *models.State) {
	i := st.SurveyIndex(c.ID)
	if i < 0 {
		return
	}
	sv := &st.Surveys[i]
	if c.Patch.Title != nil {
		sv.Title = *c.Patch.Title
	}
	if c.Patch.Description != nil {
		sv.Description = *c.Patch.Description
	}
	if c.Patch.Status != nil && c.Patch.Status.Valid() {
		sv.Status = *c.Patch.Status
	}
	sv.UpdatedAt = c.At
}

type DeleteSurvey struct {
	ID string
}

func (DeleteSurvey) Name() string { return "delete_survey" }

// Phản hồi của survey bị xoá vẫn nằm trong chỉ mục (orphaned).
func (c DeleteSurvey) apply(st *models.State) {
	i := st.SurveyIndex(c.ID)
	if i < 0 {
		return
	}
	st.Surveys = append(st.Surveys[:i], st.Surveys[i+1:]...)
	if st.CurrentSurveyID == c.ID {
		st.CurrentSurveyID = ""
	}
}

// SetCurrentSurvey với ID rỗng là bỏ chọn.
type SetCurrentSurvey struct {
	ID string
}

func (SetCurrentSurvey) Name() string { return "set_current_survey" }

func (c SetCurrentSurvey) apply(st *models.State) {
	if c.ID != "" && st.SurveyIndex(c.ID) < 0 {
		st.CurrentSurveyID = ""
		return
	}
	st.CurrentSurveyID = c.ID
}

type AddQuestion struct {
	ID      string
	Type    models.QuestionType
	Title   *string
	Options []string
	At      time.Time
}

func (AddQuestion) Name() string { return "add_question" }

func (c AddQuestion) apply(st *models.State) {
	sv := st.Current()
	if sv == nil || !c.Type.Valid() {
		return
	}
	q := models.Question{
		ID:       c.ID,
		Type:     c.Type,
		Title:    models.DefaultQuestionTitle,
		Required: false,
		Options:  models.CleanOptions(c.Type, c.Options),
	}
	if c.Title != nil && *c.Title != "" {
		q.Title = *c.Title
	}
	sv.Questions = append(sv.Questions, q)
	sv.UpdatedAt = c.At
}

type UpdateQuestion struct {
	Patch QuestionPatch
	At    time.Time
}

func (UpdateQuestion) Name() string { return "update_question" }

func (c UpdateQuestion) apply(st *models.State) {
	sv := st.Current()
	if sv == nil {
		return
	}
	i := sv.QuestionIndex(c.Patch.ID)
	if i < 0 {
		return
	}
	q := &sv.Questions[i]
	if c.Patch.Type != nil && c.Patch.Type.Valid() {
		q.Type = *c.Patch.Type
	}
	if c.Patch.Title != nil {
		q.Title = *c.Patch.Title
	}
	if c.Patch.Required != nil {
		q.Required = *c.Patch.Required
	}
	if c.Patch.Options != nil {
		q.Options = *c.Patch.Options
	}
	q.Options = models.CleanOptions(q.Type, q.Options)
	sv.UpdatedAt = c.At
}

type DeleteQuestion struct {
	QuestionID string
	At         time.Time
}

func (DeleteQuestion) Name() string { return "delete_question" }

func (c DeleteQuestion) apply(st *models.State) {
	sv := st.Current()
	if sv == nil {
		return
	}
	i := sv.QuestionIndex(c.QuestionID)
	if i < 0 {
		return
	}
	sv.Questions = append(sv.Questions[:i], sv.Questions[i+1:]...)
	sv.UpdatedAt = c.At
}

// ReorderQuestions xếp các câu hỏi theo Order; câu không có trong Order
// giữ thứ tự cũ và nằm sau. Id lạ bị bỏ qua.
type ReorderQuestions struct {
	Order []string
	At    time.Time
}

func (ReorderQuestions) Name() string { return "reorder_questions" }

func (c ReorderQuestions) apply(st *models.State) {
	sv := st.Current()
	if sv == nil {
		return
	}
	out := make([]models.Question, 0, len(sv.Questions))
	taken := make(map[string]bool, len(sv.Questions))
	for _, id := range c.Order {
		i := sv.QuestionIndex(id)
		if i < 0 || taken[id] {
			continue
		}
		taken[id] = true
		out = append(out, sv.Questions[i])
	}
	for _, q := range sv.Questions {
		if !taken[q.ID] {
			out = append(out, q)
		}
	}
	sv.Questions = out
	sv.UpdatedAt = c.At
}

// RecordResponse không kiểm tra câu trả lời; việc đó làm trước khi gọi.
// Câu trả lời chỉ được đưa về dạng chuẩn để nạp lại từ blob cho ra đúng state.
type RecordResponse struct {
	ID       string
	SurveyID string
	Answers  map[string]models.Answer
	At       time.Time
}

func (RecordResponse) Name() string { return "record_response" }

func (c RecordResponse) apply(st *models.State) {
	answers := make(map[string]models.Answer, len(c.Answers))
	for k, v := range c.Answers {
		answers[k] = v.Canonical()
	}
	st.Responses[c.SurveyID] = append(st.Responses[c.SurveyID], models.Response{
		ID:          c.ID,
		SurveyID:    c.SurveyID,
		Answers:     answers,
		SubmittedAt: c.At,
	})
}
