package report

import (
	"bytes"
	"strings"

	"github.com/vnkhanh/survey-engine/models"
)

const (
	SubmissionDateHeader = "Submission Date"
	TimestampLayout      = "2006-01-02 15:04:05"

	// FallbackFileTitle dùng khi tiêu đề survey rỗng.
	FallbackFileTitle = "survey"
)

// Table dựng bảng export: dòng tiêu đề rồi mỗi phản hồi một dòng,
// giữ nguyên thứ tự gửi.
func Table(sv models.Survey, responses []models.Response) [][]string {
	header := make([]string, 0, len(sv.Questions)+1)
	header = append(header, SubmissionDateHeader)
	for _, q := range sv.Questions {
		header = append(header, q.Title)
	}

	rows := make([][]string, 0, len(responses)+1)
	rows = append(rows, header)
	for _, r := range responses {
		row := make([]string, 0, len(sv.Questions)+1)
		row = append(row, r.SubmittedAt.Format(TimestampLayout))
		for _, q := range sv.Questions {
			row = append(row, r.Answers[q.ID].Cell())
		}
		rows = append(rows, row)
	}
	return rows
}

// CSV luôn bọc mọi ô trong dấu nháy kép và nhân đôi dấu nháy bên trong.
func CSV(rows [][]string) []byte {
	var buf bytes.Buffer
	for i, row := range rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quote(cell))
		}
	}
	return buf.Bytes()
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// ExportResponses = Table + CSV.
func ExportResponses(sv models.Survey, responses []models.Response) []byte {
	return CSV(Table(sv, responses))
}

// Filename là tên file tải về: <title>_responses.<ext>, tiêu đề rỗng thì dùng FallbackFileTitle.
func Filename(sv models.Survey, ext string) string {
	title := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '\n', '\r':
			return '_'
		}
		return r
	}, sv.Title)
	if strings.TrimSpace(title) == "" {
		title = FallbackFileTitle
	}
	return title + "_responses." + ext
}
