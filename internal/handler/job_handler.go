package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobtracker/internal/errors"
	"jobtracker/internal/service"
)

// JobHandler handles job endpoints. Every operation is scoped to the
// authenticated caller.
type JobHandler struct {
	svc service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// CreateJobRequest represents a job creation request.
type CreateJobRequest struct {
	Company  string `json:"company" validate:"required,max=50"`
	Position string `json:"position" validate:"required,max=100"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=interview declined pending"`
}

// UpdateJobRequest represents a partial job update. Absent fields are
// left unchanged.
type UpdateJobRequest struct {
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// JobListResponse represents the job listing response.
type JobListResponse struct {
	Jobs  interface{} `json:"jobs"`
	Count int         `json:"count"`
}

// CreateJob godoc
// @Summary Create a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /job/create [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	callerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	job, err := h.svc.CreateJob(c.Request().Context(), callerID, req.Company, req.Position, req.Status)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary List the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	callerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.svc.ListJobs(c.Request().Context(), callerID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, JobListResponse{
		Jobs:  jobs,
		Count: len(jobs),
	})
}

// GetJob godoc
// @Summary Get one of the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	callerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	job, err := h.svc.GetJob(c.Request().Context(), uint(id), callerID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary Update one of the caller's jobs
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job/edit/{id} [patch]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	callerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	job, err := h.svc.UpdateJob(c.Request().Context(), uint(id), callerID, service.UpdateJobInput{
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete one of the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	callerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteJob(c.Request().Context(), uint(id), callerID); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "job deleted successfully",
	})
}
