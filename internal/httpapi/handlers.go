package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/degreeplan/internal/app"
	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves generation requests.
type ScheduleHandler struct {
	log      *slog.Logger
	plans    app.PlanUseCase
	defaults domain.Preferences
	now      func() time.Time
}

// NewScheduleHandler creates a handler; request preferences fall back to
// defaults field by field.
func NewScheduleHandler(log *slog.Logger, plans app.PlanUseCase, defaults domain.Preferences) *ScheduleHandler {
	return &ScheduleHandler{
		log:      log.With("handler", "ScheduleHandler"),
		plans:    plans,
		defaults: defaults,
		now:      time.Now,
	}
}

// Schedule handles POST /api/schedule over a flattened class list.
func (h *ScheduleHandler) Schedule(c *gin.Context) {
	var body contract.ScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, fmt.Errorf("%w: %v", contract.ErrMalformedRequest, err))
		return
	}
	req, err := body.ToDomain(h.defaults)
	if err != nil {
		RespondError(c, err)
		return
	}
	resp, err := h.plans.Schedule(c.Request.Context(), req)
	if err != nil {
		h.logFailure("Schedule failed", err)
		RespondError(c, err)
		return
	}
	RespondOK(c, contract.FromPlanResponse(resp, h.now()))
}

// Plan handles POST /api/plan over catalog course ids.
func (h *ScheduleHandler) Plan(c *gin.Context) {
	var body contract.PlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, fmt.Errorf("%w: %v", contract.ErrMalformedRequest, err))
		return
	}
	req, err := body.ToDomain(h.defaults)
	if err != nil {
		RespondError(c, err)
		return
	}
	resp, err := h.plans.Plan(c.Request.Context(), req)
	if err != nil {
		h.logFailure("Plan failed", err)
		RespondError(c, err)
		return
	}
	RespondOK(c, contract.FromPlanResponse(resp, h.now()))
}

func (h *ScheduleHandler) logFailure(msg string, err error) {
	if contract.CodeFor(err) == contract.CodeInternal {
		h.log.Error(msg, "error", err)
		return
	}
	h.log.Warn(msg, "error", err, "code", contract.CodeFor(err))
}

// CatalogHandler serves read-only catalog lookups.
type CatalogHandler struct {
	log     *slog.Logger
	catalog app.CatalogUseCase
}

func NewCatalogHandler(log *slog.Logger, catalog app.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		log:     log.With("handler", "CatalogHandler"),
		catalog: catalog,
	}
}

// ListCourses handles GET /api/courses, optionally filtered by ?type=.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalog.ListCourses(c.Request.Context(), domain.CourseType(c.Query("type")))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"courses": contract.FromCourses(courses)})
}

func (h *CatalogHandler) GetCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	course, err := h.catalog.GetCourse(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, contract.FromCourse(course))
}

func (h *CatalogHandler) GetClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	class, err := h.catalog.GetClass(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, contract.FromClass(*class))
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// pathID parses the :id parameter, responding 400 when it is not a positive
// integer.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, fmt.Errorf("%w: invalid id %q", contract.ErrMalformedRequest, raw))
		return 0, false
	}
	return id, true
}
