package attendance

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/infrastructure/spreadsheet"
	web "hrmslite.com/hrms/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export answers with an xlsx workbook of the same rows List returns for the
// query.
func (ep *Endpoint) Export(c *gin.Context) {
	records, err := ep.service.List(c.Request.Context(), query(c))
	if err != nil {
		web.RespondError(c, err)
		return
	}

	// buffered so a rendering failure can still be answered with JSON
	var buf bytes.Buffer
	if err := spreadsheet.WriteAttendance(&buf, records); err != nil {
		web.RespondError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
