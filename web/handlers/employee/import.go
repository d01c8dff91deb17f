package employee

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
	"hrmslite.com/hrms/utils"
	web "hrmslite.com/hrms/web/common"
)

const maxImportSize = 5 << 20

type ImportFailureDTO struct {
	// Row is the 1-based data row, not counting the header.
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResultDTO struct {
	Created []*model.Employee  `json:"created"`
	Failed  []ImportFailureDTO `json:"failed"`
}

// Import creates employees from an uploaded CSV file (form field "file") with
// the header employeeId,fullName,email,department. Each row goes through the
// same validation and duplicate checks as a single create; failing rows are
// reported and do not stop the import.
func (ep *Endpoint) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(fmt.Sprintf("File is too large, the limit is %d MB", maxImportSize>>20)))
			return
		}
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'file' is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid CSV: "+err.Error()))
		return
	}

	result := ImportResultDTO{Created: []*model.Employee{}, Failed: []ImportFailureDTO{}}
	for i, row := range rows {
		employee, err := ep.service.Create(c.Request.Context(), fromRow(row))
		if err == nil {
			result.Created = append(result.Created, employee)
			continue
		}
		// a store failure aborts the import; rows already created stay
		var e *core.Error
		if !errors.As(err, &e) || e.Kind == core.KindInternal {
			web.RespondError(c, err)
			return
		}
		result.Failed = append(result.Failed, ImportFailureDTO{Row: i + 1, Message: e.Message})
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(result))
}

// fromRow maps a CSV row keyed by header onto a create request.
func fromRow(row map[string]string) core.NewEmployee {
	return core.NewEmployee{
		EmployeeID: row["employeeId"],
		FullName:   row["fullName"],
		Email:      row["email"],
		Department: row["department"],
	}
}
