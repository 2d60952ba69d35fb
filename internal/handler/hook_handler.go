package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commitgate/internal/domain"
	"commitgate/internal/service"
)

// CommitRequest is the payload git servers post for each received commit.
type CommitRequest struct {
	Project        string `json:"project" binding:"required"`
	Branch         string `json:"branch"`
	SHA            string `json:"sha" binding:"required"`
	CommitterEmail string `json:"committer_email"`
	Message        string `json:"message" binding:"required"`
}

// HookHandler handles the commit-received webhook.
type HookHandler struct {
	validationSvc service.ValidationService
}

// NewHookHandler creates a new HookHandler.
func NewHookHandler(validationSvc service.ValidationService) *HookHandler {
	return &HookHandler{validationSvc: validationSvc}
}

// Validate handles POST /api/v1/hooks/commit. The response always carries
// the decision; a rejected commit gets accepted=false and the rendered
// report as the sole rejection payload.
func (h *HookHandler) Validate(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		return
	}

	commit := &domain.Commit{
		Project:        req.Project,
		Branch:         req.Branch,
		SHA:            req.SHA,
		CommitterEmail: req.CommitterEmail,
		Message:        req.Message,
	}

	decision, err := h.validationSvc.ValidateCommit(c.Request.Context(), commit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, decision)
}
