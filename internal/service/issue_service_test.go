package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/internal/dto"
	"github.com/repo-edu/repo-edu-sub004/internal/model"
	"github.com/repo-edu/repo-edu-sub004/internal/store"
)

func setupTestIssueService(t *testing.T) (IssueService, *store.DocumentStore) {
	t.Helper()
	st := store.NewDocumentStore(zap.NewNop())
	return NewIssueService(st, zap.NewNop()), st
}

func seedIssueProfile(t *testing.T, st *store.DocumentStore) {
	t.Helper()
	doc := &model.ProfileDocument{
		ProfileID: "p1",
		Settings: model.ProfileSettings{
			Course: model.CourseIdentity{ID: "c1", Name: "算法导论"},
		},
		Roster: coverageRoster(),
	}
	if !st.PutDocument(doc) {
		t.Fatal("登记测试档案失败")
	}
	st.SetActive("p1")
}

// ════════════════════════════════════════════════════════════
// PublishValidation
// ════════════════════════════════════════════════════════════

func TestIssueService_PublishValidation(t *testing.T) {
	svc, st := setupTestIssueService(t)
	seedIssueProfile(t, st)

	err := svc.PublishValidation("p1", &dto.PublishValidationRequest{
		Roster: &model.ValidationResult{Issues: []model.ValidationIssue{
			{Kind: model.IssueMissingEmail, AffectedIDs: []string{"s1", "s2"}},
		}},
	})
	if err != nil {
		t.Fatalf("PublishValidation 应成功: %v", err)
	}

	resp := svc.IssueCards()
	if resp.ProfileID != "p1" {
		t.Errorf("期望 profile_id=p1，实际 %s", resp.ProfileID)
	}
	if len(resp.Cards) != 1 {
		t.Fatalf("期望 1 张卡片，实际 %d", len(resp.Cards))
	}
	if resp.Cards[0].ID != "roster:missing_email" {
		t.Errorf("期望卡片 roster:missing_email，实际 %s", resp.Cards[0].ID)
	}
}

func TestIssueService_PublishValidation_ProfileNotFound(t *testing.T) {
	svc, _ := setupTestIssueService(t)
	err := svc.PublishValidation("ghost", &dto.PublishValidationRequest{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("期望 ErrProfileNotFound，实际: %v", err)
	}
}

// 重新发布整体替换旧结果，不做增量合并
func TestIssueService_RepublishReplacesResults(t *testing.T) {
	svc, st := setupTestIssueService(t)
	seedIssueProfile(t, st)

	_ = svc.PublishValidation("p1", &dto.PublishValidationRequest{
		Roster: &model.ValidationResult{Issues: []model.ValidationIssue{
			{Kind: model.IssueMissingEmail, AffectedIDs: []string{"s1"}},
		}},
	})
	_ = svc.PublishValidation("p1", &dto.PublishValidationRequest{
		Roster: &model.ValidationResult{Issues: []model.ValidationIssue{
			{Kind: model.IssueInvalidEmail, AffectedIDs: []string{"s2"}},
		}},
	})

	resp := svc.IssueCards()
	if len(resp.Cards) != 1 {
		t.Fatalf("重新发布后应只剩最新结果，实际 %d 张卡片", len(resp.Cards))
	}
	if resp.Cards[0].ID != "roster:invalid_email" {
		t.Errorf("期望最新结果的卡片，实际 %s", resp.Cards[0].ID)
	}
}

// ════════════════════════════════════════════════════════════
// 退化行为
// ════════════════════════════════════════════════════════════

func TestIssueService_IssueCards_NoActiveProfile(t *testing.T) {
	svc, _ := setupTestIssueService(t)
	resp := svc.IssueCards()
	if resp.Cards == nil {
		t.Fatal("无活动档案时应返回空列表而非 nil")
	}
	if len(resp.Cards) != 0 {
		t.Errorf("无活动档案时不应有卡片，实际 %d", len(resp.Cards))
	}
}

func TestIssueService_RosterInsights_NoActiveProfile(t *testing.T) {
	svc, _ := setupTestIssueService(t)
	if got := svc.RosterInsights(); got != nil {
		t.Errorf("无活动档案时应返回 nil，实际 %+v", got)
	}
}

// ════════════════════════════════════════════════════════════
// AssignmentCoverage
// ════════════════════════════════════════════════════════════

func TestIssueService_AssignmentCoverage(t *testing.T) {
	svc, st := setupTestIssueService(t)
	seedIssueProfile(t, st)

	cov, err := svc.AssignmentCoverage("a1")
	if err != nil {
		t.Fatalf("AssignmentCoverage 应成功: %v", err)
	}
	if cov.ActiveCount != 10 || cov.AssignedActiveCount != 7 {
		t.Errorf("期望 10 活跃 / 7 已分组，实际 %d / %d", cov.ActiveCount, cov.AssignedActiveCount)
	}
}

func TestIssueService_AssignmentCoverage_Errors(t *testing.T) {
	svc, st := setupTestIssueService(t)

	if _, err := svc.AssignmentCoverage("a1"); !errors.Is(err, ErrNoActiveProfile) {
		t.Errorf("无活动档案期望 ErrNoActiveProfile，实际: %v", err)
	}

	seedIssueProfile(t, st)
	if _, err := svc.AssignmentCoverage("ghost"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("作业不存在期望 ErrAssignmentNotFound，实际: %v", err)
	}
}
