package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vnkhanh/survey-engine/models"
)

var ErrSurveyNotFound = errors.New("survey not found")

// ValidationError liệt kê mọi câu bắt buộc chưa trả lời, theo thứ tự trong survey.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required answers: %s", strings.Join(e.Missing, ", "))
}

// MissingRequired trả về id các câu bắt buộc bị thiếu câu trả lời.
func MissingRequired(sv models.Survey, answers map[string]models.Answer) []string {
	missing := []string{}
	for _, q := range sv.Questions {
		if !q.Required {
			continue
		}
		a, ok := answers[q.ID]
		if !ok || a.IsEmpty() {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// ValidateAnswers trả về *ValidationError nếu thiếu câu bắt buộc.
func ValidateAnswers(sv models.Survey, answers map[string]models.Answer) error {
	if missing := MissingRequired(sv, answers); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NormalizeAnswers gắn đúng dạng câu trả lời theo loại câu hỏi.
// Key không khớp câu hỏi nào được giữ nguyên.
func NormalizeAnswers(sv models.Survey, answers map[string]models.Answer) map[string]models.Answer {
	out := make(map[string]models.Answer, len(answers))
	for id, a := range answers {
		if i := sv.QuestionIndex(id); i >= 0 {
			out[id] = a.For(sv.Questions[i].Type)
			continue
		}
		out[id] = a.Clone()
	}
	return out
}
