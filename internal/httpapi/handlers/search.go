package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arohezay/backend/internal/advisor"
	"github.com/arohezay/backend/internal/common"
)

func (h *Handler) Ping(c *gin.Context) {
	common.Ok(c, gin.H{"pong": true})
}

// Search answers GET /search?from_area=&to_area= synchronously.
func (h *Handler) Search(c *gin.Context) {
	fromArea := strings.TrimSpace(c.Query("from_area"))
	toArea := strings.TrimSpace(c.Query("to_area"))
	if fromArea == "" || toArea == "" {
		common.Fail(c, http.StatusBadRequest, 10001, "from_area and to_area required")
		return
	}

	results, err := h.Svc.Resolve(c.Request.Context(), fromArea, toArea)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"from": fromArea, "to": toArea}).Error("search: resolve failed")
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	common.Ok(c, gin.H{"results": results})
}

// Areas answers GET /areas?query= with matching location names. The client
// prepends the raw typed text as the first suggestion.
func (h *Handler) Areas(c *gin.Context) {
	q := c.Query("query")

	names, err := h.Svc.Suggest(c.Request.Context(), q)
	if err != nil {
		logrus.WithError(err).Error("areas: suggestion lookup failed")
		common.Fail(c, http.StatusInternalServerError, 50002, "internal error")
		return
	}

	common.Ok(c, gin.H{"areas": names})
}

type searchAsyncReq struct {
	FromArea string `json:"from_area" binding:"required"`
	ToArea   string `json:"to_area" binding:"required"`
}

// SearchAsync queues an advice job for the worker and returns its id.
func (h *Handler) SearchAsync(c *gin.Context) {
	if h.Rabbit == nil {
		common.Fail(c, http.StatusServiceUnavailable, 50301, "async search not configured")
		return
	}

	var req searchAsyncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	jobID, err := common.NewULID()
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	job := &advisor.Job{
		ID:       jobID,
		FromArea: req.FromArea,
		ToArea:   req.ToArea,
		Status:   advisor.JobQueued,
	}
	if err := h.Jobs.Create(c.Request.Context(), job); err != nil {
		logrus.WithError(err).Error("search: create job failed")
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	if err := h.Rabbit.PublishJob(c.Request.Context(), job.ID); err != nil {
		logrus.WithError(err).WithField("job_id", job.ID).Error("search: enqueue failed")
		common.Fail(c, http.StatusInternalServerError, 50002, "enqueue failed")
		return
	}

	common.Ok(c, gin.H{"job_id": job.ID})
}

// GetJob answers GET /search/jobs/:job_id for polling clients.
func (h *Handler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if jobID == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "job_id required")
		return
	}

	job, err := h.Jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusNotFound, 40401, "job not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	common.Ok(c, gin.H{
		"job": gin.H{
			"id":         job.ID,
			"from_area":  job.FromArea,
			"to_area":    job.ToArea,
			"status":     job.Status,
			"results":    job.ResultJSON,
			"error":      job.Error,
			"created_at": job.CreatedAt,
			"updated_at": job.UpdatedAt,
		},
	})
}
