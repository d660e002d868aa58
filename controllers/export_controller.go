package controllers

import (
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/report"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GET /api/surveys/:id/export?format=csv|xlsx
func (ctl *Controller) ExportResponses(c *gin.Context) {
	id := c.Param("id")
	sv, ok := ctl.Store.Survey(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Khảo sát không tồn tại"})
		return
	}
	responses, _ := ctl.Store.Responses(id)
	rows := report.Table(sv, responses)

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	var (
		data        []byte
		contentType string
	)
	switch format {
	case "csv":
		data, contentType = report.CSV(rows), contentTypeCSV
	case "xlsx":
		var err error
		data, err = report.XLSX(rows)
		if err != nil {
			slog.Error("Export xlsx failed", "survey_id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Không thể xuất file"})
			return
		}
		contentType = contentTypeXLSX
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "format chỉ nhận csv hoặc xlsx"})
		return
	}

	// tiêu đề tiếng Việt đi qua dạng filename*=utf-8''...
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": report.Filename(sv, format),
	}))
	c.Data(http.StatusOK, contentType, data)
}
