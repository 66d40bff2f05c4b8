package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"employee-service/internal/domains/employee/model"
	"employee-service/internal/domains/employee/service"
	"employee-service/internal/shared/response"
)

// DeletedMessage is the plain text body returned by delete
const DeletedMessage = "Employee deleted successfully"

// EmployeeHandler handles HTTP requests for employee domain
type EmployeeHandler struct {
	service service.ServiceInterface
}

// NewEmployeeHandler creates a new employee handler instance
func NewEmployeeHandler(svc service.ServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// ROUTES REGISTRATION
// ════════════════════════════════════════════════════════════════

// RegisterRoutes mounts the employee endpoints on rg (normally /api)
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/employees", h.Create)
	rg.GET("/allemployees", h.GetAll)
	rg.GET("/employees/:id", h.GetByID)
	rg.PUT("/employees/:id", h.Update)
	rg.DELETE("/employees/:id", h.Delete)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/employees
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, model.NewInvalidPayload(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToEmployee())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/allemployees
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/employees/:id
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	employee, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/employees/:id
// ════════════════════════════════════════════════════════════════

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, model.NewInvalidPayload(err))
		return
	}

	existing, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}

	req.ApplyTo(existing)

	updated, err := h.service.Update(c.Request.Context(), existing)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/employees/:id
// ════════════════════════════════════════════════════════════════

// Delete does not check existence first; deleting a missing id still succeeds.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.String(http.StatusOK, DeletedMessage)
}

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

// parseID rejects only ids that are not integers. Zero and negative ids
// are valid lookups that simply match no employee.
func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(c, model.NewInvalidEmployeeID(raw))
		return 0, false
	}
	return id, true
}

// writeError maps a domain error to its status. The update race with a
// concurrent delete keeps the empty-body 404 used for ordinary misses.
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)

	switch status {
	case http.StatusNotFound:
		c.Status(http.StatusNotFound)
	case http.StatusInternalServerError:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Msg("employee request failed")
		response.InternalServerError(c, "Internal server error")
	default:
		var e *model.EmployeeError
		if errors.As(err, &e) && e.Err != nil {
			response.ErrorWithDetails(c, status, e.Code, e.Message, e.Err.Error())
			return
		}
		if e != nil {
			response.ErrorResponse(c, status, e.Code, e.Message)
			return
		}
		response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
	}
}
