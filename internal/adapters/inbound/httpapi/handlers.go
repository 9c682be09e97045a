package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeNotFound       = "NOT_FOUND"
	codeInternal       = "INTERNAL"
	codeCanceled       = "CANCELED"
)

// statusClientClosedRequest is the de facto status for a request abandoned
// by its client.
const statusClientClosedRequest = 499

type handlers struct {
	svc    Reviewer
	logger *zap.Logger
}

// reviewRequest is the body of POST /review. Code is a pointer so that an
// empty string is accepted while a missing or null field is not.
type reviewRequest struct {
	Code *string `json:"code" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(c *gin.Context, status int, msg, code string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}

func (h *handlers) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Code review API is running"})
}

func (h *handlers) review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error(), codeInvalidRequest)
		return
	}

	report, err := h.svc.ReviewCode(c.Request.Context(), *req.Code)
	if err != nil {
		h.logger.Warn("review aborted", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
		writeError(c, statusClientClosedRequest, err.Error(), codeCanceled)
		return
	}
	c.JSON(http.StatusOK, report.Wire())
}

func (h *handlers) rules(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Rules())
}
