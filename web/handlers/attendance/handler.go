package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/model"
	web "hrmslite.com/hrms/web/common"
)

type Endpoint struct {
	service *core.AttendanceService
}

// Register adds the attendance routes. The fixed paths (summary, export,
// employee) are matched ahead of /attendance/:id.
func Register(r *gin.RouterGroup, service *core.AttendanceService) {
	endpoint := &Endpoint{service: service}
	r.GET("/attendance", endpoint.List)
	r.GET("/attendance/summary", endpoint.Summary)
	r.GET("/attendance/export", endpoint.Export)
	r.GET("/attendance/employee/:employeeId", endpoint.ForEmployee)
	r.GET("/attendance/:id", endpoint.Get)
	r.POST("/attendance", endpoint.Create)
	r.PUT("/attendance/:id", endpoint.Update)
	r.DELETE("/attendance/:id", endpoint.Delete)
}

type AttendanceCreateDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

type AttendanceUpdateDTO struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// query reads the listing filters. A malformed limit is ignored like the
// other filters.
func query(c *gin.Context) core.AttendanceQuery {
	q := core.AttendanceQuery{
		Date:       c.Query("date"),
		EmployeeID: c.Query("employeeId"),
	}
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = val
	}
	return q
}

func (ep *Endpoint) List(c *gin.Context) {
	records, err := ep.service.List(c.Request.Context(), query(c))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(records))
}

func (ep *Endpoint) Get(c *gin.Context) {
	record, err := ep.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(record))
}

func (ep *Endpoint) ForEmployee(c *gin.Context) {
	result, err := ep.service.ForEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	res := web.NewSuccessResponse(result.Records)
	res.TotalPresent = &result.TotalPresent
	c.JSON(http.StatusOK, res)
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto AttendanceCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		web.RespondBindingError(c, err)
		return
	}

	record, err := ep.service.Create(c.Request.Context(), core.NewAttendance{
		EmployeeID: dto.EmployeeID,
		Date:       dto.Date,
		Status:     model.AttendanceStatus(dto.Status),
	})
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, web.NewMessageResponse("Attendance recorded successfully", record))
}

func (ep *Endpoint) Update(c *gin.Context) {
	var dto AttendanceUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		web.RespondBindingError(c, err)
		return
	}

	update := core.AttendanceUpdate{Date: dto.Date}
	if dto.Status != nil {
		status := model.AttendanceStatus(*dto.Status)
		update.Status = &status
	}

	record, err := ep.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse("Attendance updated successfully", record))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	if err := ep.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse("Attendance record deleted successfully", nil))
}

func (ep *Endpoint) Summary(c *gin.Context) {
	summary, err := ep.service.Summary(c.Request.Context())
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(summary))
}
