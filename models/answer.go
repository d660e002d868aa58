package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type AnswerKind string

const (
	AnswerScalar AnswerKind = "scalar" // text, số, email, ngày
	AnswerSingle AnswerKind = "single" // single-choice, dropdown
	AnswerMulti  AnswerKind = "multi"  // multi-choice
)

// Answer là tagged union: Text dùng cho scalar/single, Choices cho multi.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Choices []string
}

func Scalar(text string) Answer { return Answer{Kind: AnswerScalar, Text: text} }

func Single(option string) Answer { return Answer{Kind: AnswerSingle, Text: option} }

func Multi(options ...string) Answer {
	return Answer{Kind: AnswerMulti, Choices: append([]string{}, options...)}
}

// IsEmpty: chuỗi rỗng hoặc danh sách rỗng đều tính là chưa trả lời.
func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case AnswerMulti:
		return len(a.Choices) == 0
	default:
		return a.Text == ""
	}
}

// Cell là giá trị hiển thị trong một ô export.
func (a Answer) Cell() string {
	if a.Kind == AnswerMulti {
		return strings.Join(a.Choices, "; ")
	}
	return a.Text
}

// For chuẩn hoá câu trả lời theo loại câu hỏi.
func (a Answer) For(t QuestionType) Answer {
	switch t.AnswerKind() {
	case AnswerSingle:
		if a.Kind == AnswerMulti {
			// giống cách client cũ dùng mảng làm key: "A,B"
			return Single(strings.Join(a.Choices, ","))
		}
		return Single(a.Text)
	case AnswerMulti:
		if a.Kind == AnswerSingle {
			return Scalar(a.Text)
		}
		return a
	default:
		if a.Kind == AnswerSingle {
			return Scalar(a.Text)
		}
		return a
	}
}

// Canonical đưa Answer về đúng dạng sau khi qua JSON: kind rỗng là scalar,
// multi luôn có Choices (không nil) và không mang Text, scalar/single không mang Choices.
func (a Answer) Canonical() Answer {
	switch a.Kind {
	case AnswerMulti:
		return Multi(a.Choices...)
	case AnswerSingle:
		return Single(a.Text)
	default:
		return Scalar(a.Text)
	}
}

func (a Answer) Clone() Answer {
	out := a
	if a.Choices != nil {
		out.Choices = append([]string{}, a.Choices...)
	}
	return out
}

type taggedAnswer struct {
	Kind    AnswerKind `json:"kind"`
	Text    string     `json:"text,omitempty"`
	Choices []string   `json:"choices,omitempty"`
}

// multiAnswer giữ "choices":[] cho lựa chọn rỗng.
type multiAnswer struct {
	Kind    AnswerKind `json:"kind"`
	Choices []string   `json:"choices"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	c := a.Canonical()
	if c.Kind == AnswerMulti {
		return json.Marshal(multiAnswer{Kind: c.Kind, Choices: c.Choices})
	}
	return json.Marshal(taggedAnswer{Kind: c.Kind, Text: c.Text})
}

// UnmarshalJSON nhận cả dạng đã gắn tag ({"kind":...}) lẫn giá trị thô
// mà client gửi lên: chuỗi, số, bool, null hoặc mảng.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*a = Scalar("")
		return nil
	}

	switch data[0] {
	case '{':
		var t taggedAnswer
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		switch t.Kind {
		case AnswerMulti:
			*a = Multi(t.Choices...)
		case AnswerSingle:
			*a = Single(t.Text)
		case AnswerScalar, "":
			*a = Scalar(t.Text)
		default:
			return fmt.Errorf("answer: unknown kind %q", t.Kind)
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		choices := make([]string, 0, len(raw))
		for _, r := range raw {
			s, err := rawText(r)
			if err != nil {
				return err
			}
			choices = append(choices, s)
		}
		*a = Multi(choices...)
		return nil
	default:
		s, err := rawText(data)
		if err != nil {
			return err
		}
		*a = Scalar(s)
		return nil
	}
}

func rawText(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("answer: unsupported nested value %s", string(data))
	default:
		// số hoặc bool: giữ nguyên dạng văn bản
		return string(data), nil
	}
}
