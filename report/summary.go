package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/vnkhanh/survey-engine/models"
)

type SummaryKind string

const (
	KindNumeric     SummaryKind = "numeric"
	KindCategorical SummaryKind = "categorical"
	KindCount       SummaryKind = "count"
)

// Summary là thống kê của một câu hỏi. Chỉ các trường ứng với Kind có nghĩa.
type Summary struct {
	QuestionID string              `json:"question_id"`
	Type       models.QuestionType `json:"type"`
	Title      string              `json:"title"`
	Kind       SummaryKind         `json:"kind"`
	Average    float64             `json:"average"`
	Count      int                 `json:"count"`
	Options    map[string]int      `json:"options,omitempty"`
}

// Overview gom số liệu cấp survey cho dashboard.
type Overview struct {
	SurveyID       string    `json:"survey_id"`
	Title          string    `json:"title"`
	TotalResponses int       `json:"total_responses"`
	QuestionCount  int       `json:"question_count"`
	CompletionRate int       `json:"completion_rate"`
	Questions      []Summary `json:"questions"`
}

func Summarize(sv models.Survey, responses []models.Response) Overview {
	ov := Overview{
		SurveyID:       sv.ID,
		Title:          sv.Title,
		TotalResponses: len(responses),
		QuestionCount:  len(sv.Questions),
		Questions:      make([]Summary, 0, len(sv.Questions)),
	}
	if len(responses) > 0 {
		// mọi phản hồi đã qua kiểm tra câu bắt buộc nên coi như hoàn thành
		ov.CompletionRate = 100
	}
	for _, q := range sv.Questions {
		ov.Questions = append(ov.Questions, SummarizeQuestion(q, responses))
	}
	return ov
}

// SummarizeQuestion tính thống kê cho một câu hỏi; không có dữ liệu thì trả về giá trị 0.
func SummarizeQuestion(q models.Question, responses []models.Response) Summary {
	sum := Summary{QuestionID: q.ID, Type: q.Type, Title: q.Title}
	answers := answered(q.ID, responses)

	switch q.Type {
	case models.TypeRating, models.TypeNumber:
		sum.Kind = KindNumeric
		sum.Average, sum.Count = average(answers)
	case models.TypeSingleChoice, models.TypeDropdown:
		sum.Kind = KindCategorical
		sum.Options = map[string]int{}
		for _, a := range answers {
			key := a.Text
			if a.Kind == models.AnswerMulti {
				key = strings.Join(a.Choices, ",")
			}
			sum.Options[key]++
			sum.Count++
		}
	case models.TypeMultiChoice:
		sum.Kind = KindCategorical
		sum.Options = map[string]int{}
		for _, a := range answers {
			if a.Kind != models.AnswerMulti {
				continue
			}
			for _, c := range a.Choices {
				sum.Options[c]++
			}
			sum.Count++
		}
	default:
		sum.Kind = KindCount
		sum.Count = len(answers)
	}
	return sum
}

func answered(questionID string, responses []models.Response) []models.Answer {
	out := []models.Answer{}
	for _, r := range responses {
		a, ok := r.Answers[questionID]
		if !ok || a.IsEmpty() {
			continue
		}
		out = append(out, a)
	}
	return out
}

// average bỏ qua giá trị không đổi được sang số; làm tròn 1 chữ số thập phân.
func average(answers []models.Answer) (float64, int) {
	var total float64
	n := 0
	for _, a := range answers {
		if a.Kind == models.AnswerMulti {
			continue
		}
		v, ok := parseNumber(a.Text)
		if !ok {
			continue
		}
		total += v
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return math.Round(total/float64(n)*10) / 10, n
}

// parseNumber nhận số thập phân và số nguyên có tiền tố 0x/0o/0b.
// Infinity và NaN bị loại vì trung bình phải ghi được ra JSON.
func parseNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) && !strings.Contains(s, "_") {
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return float64(v), true
		}
	}
	return 0, false
}
