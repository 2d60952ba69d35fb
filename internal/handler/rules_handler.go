package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commitgate/internal/port"
)

// RulesHandler exposes the loaded validation rules for inspection.
type RulesHandler struct {
	rules     port.RulesProvider
	templates port.TemplateProvider
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(rules port.RulesProvider, templates port.TemplateProvider) *RulesHandler {
	return &RulesHandler{rules: rules, templates: templates}
}

// GetProjectRules handles GET /api/v1/rules?project=...&branch=...
func (h *RulesHandler) GetProjectRules(c *gin.Context) {
	project := c.Query("project")
	if project == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_PROJECT", "project query parameter is required")
		return
	}

	rules, err := h.rules.ProjectRules(c.Request.Context(), project, c.Query("branch"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rules)
}

// GetTemplate handles GET /api/v1/templates/:name
func (h *RulesHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.templates.Template(c.Request.Context(), c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tpl)
}
