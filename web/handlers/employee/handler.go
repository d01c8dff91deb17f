package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hrmslite.com/hrms/core"
	web "hrmslite.com/hrms/web/common"
)

type Endpoint struct {
	service *core.EmployeeService
}

func Register(r *gin.RouterGroup, service *core.EmployeeService) {
	endpoint := &Endpoint{service: service}
	r.GET("/employees", endpoint.List)
	r.GET("/employees/:id", endpoint.Get)
	r.POST("/employees", endpoint.Create)
	r.POST("/employees/import", endpoint.Import)
	r.PUT("/employees/:id", endpoint.Update)
	r.DELETE("/employees/:id", endpoint.Delete)
}

type EmployeeCreateDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type EmployeeUpdateDTO struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	FullName   *string `json:"fullName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (ep *Endpoint) List(c *gin.Context) {
	employees, err := ep.service.List(c.Request.Context())
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(employees))
}

func (ep *Endpoint) Get(c *gin.Context) {
	employee, err := ep.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(employee))
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto EmployeeCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		web.RespondBindingError(c, err)
		return
	}

	employee, err := ep.service.Create(c.Request.Context(), core.NewEmployee{
		EmployeeID: dto.EmployeeID,
		FullName:   dto.FullName,
		Email:      dto.Email,
		Department: dto.Department,
	})
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, web.NewMessageResponse("Employee created successfully", employee))
}

func (ep *Endpoint) Update(c *gin.Context) {
	var dto EmployeeUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		web.RespondBindingError(c, err)
		return
	}

	employee, err := ep.service.Update(c.Request.Context(), c.Param("id"), core.EmployeeUpdate{
		EmployeeID: dto.EmployeeID,
		FullName:   dto.FullName,
		Email:      dto.Email,
		Department: dto.Department,
	})
	if err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse("Employee updated successfully", employee))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	if err := ep.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		web.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, web.NewMessageResponse("Employee deleted successfully", nil))
}
