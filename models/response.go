package models

import "time"

// Response là một lần gửi khảo sát; tạo một lần, không sửa, không xoá.
type Response struct {
	ID          string            `json:"id"`
	SurveyID    string            `json:"surveyId"`
	Answers     map[string]Answer `json:"answers"`
	SubmittedAt time.Time         `json:"submittedAt"`
}

func (r Response) Clone() Response {
	out := r
	out.Answers = make(map[string]Answer, len(r.Answers))
	for k, v := range r.Answers {
		out.Answers[k] = v.Clone()
	}
	return out
}
