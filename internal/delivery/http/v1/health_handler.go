package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Rate limit store states reported by /health.
const (
	storeRedis          = "redis"
	storeMemoryFallback = "memory fallback"
	storeUnavailable    = "redis unavailable, memory fallback"
)

type HealthResponse struct {
	Status         string `json:"status"`
	RateLimitStore string `json:"rate_limit_store"`
}

// Health godoc
// @Summary      Health check
// @Description  Liveness plus the store backing rate limiting
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=HealthResponse}
// @Router       /health [get]
func Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", RateLimitStore: storeMemoryFallback}

	if redis.Client() != nil {
		resp.RateLimitStore = storeRedis
		if err := redis.HealthCheck(c.Request.Context()); err != nil {
			logger.Log.Warn("Redis health check failed", "error", err)
			resp.RateLimitStore = storeUnavailable
		}
	}

	response.Success(c, http.StatusOK, "System operational", resp)
}
