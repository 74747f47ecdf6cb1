package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

func (h *Handler) techStacks(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DefaultTechStacks())
}

func (h *Handler) features(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DefaultFeatures())
}

func (h *Handler) create(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid request body"})
		return
	}

	cfg, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, errorResp{Error: verr.Error()})
			return
		}
		h.log.Error("create project failed", append(summary(in.Config()), zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to create project"})
		return
	}

	c.JSON(http.StatusOK, createResp{
		Success: true,
		Project: cfg,
		Message: "Project created successfully",
	})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResp{Error: "Project not found"})
		return
	}

	cfg, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResp{Error: "Project not found"})
			return
		}
		h.log.Error("get project failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error("list projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) generate(c *gin.Context) {
	cfg, ok := h.bindRender(c)
	if !ok {
		return
	}

	plan, err := h.svc.GeneratePlan(cfg)
	if err != nil {
		h.renderFailure(c, "Failed to generate project plan", cfg, err)
		return
	}
	c.JSON(http.StatusOK, planResp{Success: true, Plan: plan})
}

func (h *Handler) download(c *gin.Context) {
	cfg, ok := h.bindRender(c)
	if !ok {
		return
	}

	bundle, err := h.svc.BuildArchive(cfg)
	if err != nil {
		h.renderFailure(c, "Failed to generate project files", cfg, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, bundle.Filename))
	c.Data(http.StatusOK, "application/zip", bundle.Data)
}

func (h *Handler) bindRender(c *gin.Context) (domain.ProjectConfig, bool) {
	var req renderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "Invalid request body"})
		return domain.ProjectConfig{}, false
	}
	if req.Project == nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "Missing required field: project"})
		return domain.ProjectConfig{}, false
	}
	return req.Project.Config(), true
}

func (h *Handler) renderFailure(c *gin.Context, prefix string, cfg domain.ProjectConfig, err error) {
	status := http.StatusInternalServerError
	if domain.IsValidation(err) {
		status = http.StatusBadRequest
	} else {
		h.log.Error(prefix, append(summary(cfg), zap.Error(err))...)
	}
	c.JSON(status, errorResp{Error: fmt.Sprintf("%s: %s", prefix, err)})
}
