package models

import "strings"

type QuestionType string

const (
	TypeShortText    QuestionType = "short-text"
	TypeLongText     QuestionType = "long-text"
	TypeSingleChoice QuestionType = "single-choice"
	TypeMultiChoice  QuestionType = "multi-choice"
	TypeDropdown     QuestionType = "dropdown"
	TypeRating       QuestionType = "rating"
	TypeNumber       QuestionType = "number"
	TypeEmail        QuestionType = "email"
	TypeDate         QuestionType = "date"
)

const DefaultQuestionTitle = "New Question"

var QuestionTypes = []QuestionType{
	TypeShortText, TypeLongText, TypeSingleChoice, TypeMultiChoice,
	TypeDropdown, TypeRating, TypeNumber, TypeEmail, TypeDate,
}

func (t QuestionType) Valid() bool {
	for _, v := range QuestionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// HasOptions: chỉ 3 loại câu hỏi lựa chọn mới dùng options.
func (t QuestionType) HasOptions() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice || t == TypeDropdown
}

// AnswerKind cho biết dạng câu trả lời mà loại câu hỏi này nhận.
func (t QuestionType) AnswerKind() AnswerKind {
	switch t {
	case TypeSingleChoice, TypeDropdown:
		return AnswerSingle
	case TypeMultiChoice:
		return AnswerMulti
	default:
		return AnswerScalar
	}
}

type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Title    string       `json:"title"`
	Required bool         `json:"required"`
	Options  []string     `json:"options"`
}

func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string{}, q.Options...)
	}
	return out
}

// CleanOptions bỏ các lựa chọn rỗng; loại không có lựa chọn thì trả về slice rỗng.
func CleanOptions(t QuestionType, options []string) []string {
	out := []string{}
	if !t.HasOptions() {
		return out
	}
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}
