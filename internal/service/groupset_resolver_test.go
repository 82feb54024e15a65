package service

import (
	"testing"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

func testRosterWithGroups() *model.Roster {
	return &model.Roster{
		Students: []model.RosterMember{
			{ID: "s1", Name: "张三", Status: model.MemberStatusActive},
			{ID: "s2", Name: "李四", Status: model.MemberStatusActive},
			{ID: "s3", Name: "王五", Status: model.MemberStatusActive},
		},
	}
}

func TestResolveGroupSetGroups_NilInputs(t *testing.T) {
	if got := ResolveGroupSetGroups(nil, &model.GroupSet{}); got != nil {
		t.Errorf("名册为 nil 时应返回 nil，实际 %v", got)
	}
	if got := ResolveGroupSetGroups(testRosterWithGroups(), nil); got != nil {
		t.Errorf("分组集为 nil 时应返回 nil，实际 %v", got)
	}
}

func TestResolveGroupSetGroups_UnlinkedUsesMemberIDs(t *testing.T) {
	set := &model.GroupSet{
		ID:   "gs-1",
		Kind: model.GroupSetKindUnlinked,
		Groups: []model.Group{
			{ID: "g1", Name: "第一组", MemberIDs: []string{"s1", "s2"}},
			{ID: "g2", Name: "第二组", MemberIDs: []string{"s3"}},
		},
	}

	groups := ResolveGroupSetGroups(testRosterWithGroups(), set)
	if len(groups) != 2 {
		t.Fatalf("期望 2 个分组，实际 %d", len(groups))
	}
	if len(groups[0].MemberIDs) != 2 || groups[0].MemberIDs[0] != "s1" {
		t.Errorf("unlinked 集应直接使用 member_ids，实际 %v", groups[0].MemberIDs)
	}
	if groups[0].UnresolvedCount != 0 {
		t.Errorf("unlinked 集 UnresolvedCount 应为 0，实际 %d", groups[0].UnresolvedCount)
	}
}

func TestResolveGroupSetGroups_LinkedUsesResolvedIDs(t *testing.T) {
	set := &model.GroupSet{
		ID:   "gs-lms",
		Kind: model.GroupSetKindLinked,
		Groups: []model.Group{
			{
				ID:                "g1",
				Name:              "LMS 组",
				LMSMemberIDs:      []string{"lms-1", "lms-2", "lms-9"},
				ResolvedMemberIDs: []string{"s1", "s2"},
				UnresolvedCount:   1,
			},
		},
	}

	groups := ResolveGroupSetGroups(testRosterWithGroups(), set)
	if len(groups) != 1 {
		t.Fatalf("期望 1 个分组，实际 %d", len(groups))
	}
	g := groups[0]
	if len(g.MemberIDs) != 2 || g.MemberIDs[0] != "s1" || g.MemberIDs[1] != "s2" {
		t.Errorf("linked 集应使用预解析的 resolved_member_ids，实际 %v", g.MemberIDs)
	}
	if g.UnresolvedCount != 1 {
		t.Errorf("期望 UnresolvedCount=1，实际 %d", g.UnresolvedCount)
	}
}

func TestResolveGroupSetGroups_DoesNotAliasInput(t *testing.T) {
	set := &model.GroupSet{
		ID:   "gs-1",
		Kind: model.GroupSetKindCopied,
		Groups: []model.Group{
			{ID: "g1", Name: "第一组", MemberIDs: []string{"s1", "s2"}},
		},
	}

	groups := ResolveGroupSetGroups(testRosterWithGroups(), set)
	groups[0].MemberIDs[0] = "tampered"

	if set.Groups[0].MemberIDs[0] != "s1" {
		t.Error("修改返回值不应影响输入分组集")
	}
}
