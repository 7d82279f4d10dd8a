package v1

import (
	"errors"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Messages shown to clients. Transport and decode failures share one message.
const (
	msgLoading    = "Job listings are still loading. Please try again shortly."
	msgLoadFailed = "Failed to load job listings."
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/filters", handler.Filters)
		jobs.GET("/status", handler.Status)
	}
}

// ListJobsQuery is the filter selection. An absent parameter leaves that
// dimension unconstrained; a present one, even empty, must match exactly.
type ListJobsQuery struct {
	Role     *string `form:"role" binding:"omitempty,filter_value"`
	Language *string `form:"language" binding:"omitempty,filter_value"`
	Tool     *string `form:"tool" binding:"omitempty,filter_value"`
}

func (q ListJobsQuery) selection() domain.Selection {
	return domain.Selection{Role: q.Role, Language: q.Language, Tool: q.Tool}
}

// StatusResponse describes the one-time dataset load.
type StatusResponse struct {
	State      domain.LoadState `json:"state"`
	Jobs       int              `json:"jobs"`
	Error      string           `json:"error,omitempty"`
	StartedAt  string           `json:"started_at,omitempty"`
	FinishedAt string           `json:"finished_at,omitempty"`
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Jobs matching every given filter, in source order. Omitted filters match everything.
// @Tags         jobs
// @Produce      json
// @Param        role      query     string  false  "Exact role"
// @Param        language  query     string  false  "Language the job lists"
// @Param        tool      query     string  false  "Tool the job lists"
// @Success      200       {object}  response.Response{data=domain.JobListing}
// @Failure      400       {object}  response.Response
// @Failure      502       {object}  response.Response
// @Failure      503       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var q ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	listing, err := h.jobUC.ListJobs(c.Request.Context(), q.selection())
	if err != nil {
		c.Error(translateLoadError(err))
		return
	}

	response.Success(c, http.StatusOK, "Job list", listing)
}

// Filters godoc
// @Summary      Filter options
// @Description  Distinct roles, languages and tools across all loaded jobs, in first-seen order
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.FilterOptions}
// @Failure      502  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /jobs/filters [get]
func (h *JobHandler) Filters(c *gin.Context) {
	opts, err := h.jobUC.FilterOptions(c.Request.Context())
	if err != nil {
		c.Error(translateLoadError(err))
		return
	}

	response.Success(c, http.StatusOK, "Filter options", opts)
}

// Status godoc
// @Summary      Load status
// @Description  State of the job dataset load: pending, ready or failed
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=StatusResponse}
// @Router       /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	snap := h.jobUC.Status(c.Request.Context())

	resp := StatusResponse{
		State: snap.State,
		Jobs:  len(snap.Jobs),
	}
	if snap.State == domain.LoadFailed {
		resp.Error = msgLoadFailed
	}
	if !snap.StartedAt.IsZero() {
		resp.StartedAt = snap.StartedAt.UTC().Format(timeLayout)
	}
	if !snap.FinishedAt.IsZero() {
		resp.FinishedAt = snap.FinishedAt.UTC().Format(timeLayout)
	}

	response.Success(c, http.StatusOK, "Job load status", resp)
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func translateLoadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotReady):
		return apperror.ServiceUnavailable(msgLoading, nil)
	case errors.Is(err, domain.ErrLoadFailed):
		return apperror.BadGateway(msgLoadFailed, err)
	default:
		return err
	}
}
