package dto

import (
	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

// PublishValidationRequest 外部校验引擎发布最新校验结果
type PublishValidationRequest struct {
	Roster        *model.ValidationResult            `json:"roster"`
	PerAssignment map[string]*model.ValidationResult `json:"per_assignment"`
}

// IssueCardsResponse 问题卡片列表响应
type IssueCardsResponse struct {
	ProfileID string            `json:"profile_id,omitempty"`
	Cards     []model.IssueCard `json:"cards"`
}
