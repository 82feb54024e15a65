package service

import (
	"fmt"
	"testing"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

func TestBuildRosterInsights_NilRoster(t *testing.T) {
	if got := BuildRosterInsights(nil); got != nil {
		t.Errorf("名册缺失时应返回 nil，实际 %+v", got)
	}
}

func TestBuildRosterInsights_Counts(t *testing.T) {
	roster := &model.Roster{
		Students: []model.RosterMember{
			{ID: "s1", Name: "张三", Email: "a@x.com", GitUsername: "zhang", Status: model.MemberStatusActive},
			{ID: "s2", Name: "李四", Email: "b@x.com", Status: model.MemberStatusActive},
			{ID: "s3", Name: "王五", Email: "  ", GitUsername: "wang", Status: model.MemberStatusDropped},
			{ID: "s4", Name: "赵六", Status: model.MemberStatusIncomplete},
		},
		// 教职工不参与统计
		Staff: []model.RosterMember{
			{ID: "t1", Name: "助教", Status: model.MemberStatusActive},
		},
	}

	got := BuildRosterInsights(roster)
	want := &model.RosterInsights{
		ActiveCount:             2,
		DroppedCount:            1,
		IncompleteCount:         1,
		MissingEmailCount:       2, // 纯空白邮箱也算缺失
		MissingGitUsernameCount: 2,
	}
	if *got != *want {
		t.Errorf("统计不符\n期望 %+v\n实际 %+v", want, got)
	}
}

func TestBuildRosterInsights_EmptyRoster(t *testing.T) {
	got := BuildRosterInsights(&model.Roster{})
	if got == nil {
		t.Fatal("空名册应返回零值统计而非 nil")
	}
	if *got != (model.RosterInsights{}) {
		t.Errorf("空名册统计应全为 0，实际 %+v", got)
	}
}

// ════════════════════════════════════════════════════════════
// 作业分组覆盖
// ════════════════════════════════════════════════════════════

// coverageRoster 10 名活跃学生，其中 7 人被分组覆盖
func coverageRoster() *model.Roster {
	r := &model.Roster{}
	for i := 1; i <= 10; i++ {
		r.Students = append(r.Students, model.RosterMember{
			ID:     fmt.Sprintf("s%d", i),
			Name:   fmt.Sprintf("学生%d", i),
			Status: model.MemberStatusActive,
		})
	}
	// 两名退课学生不参与统计
	r.Students = append(r.Students,
		model.RosterMember{ID: "d1", Name: "退课甲", Status: model.MemberStatusDropped},
		model.RosterMember{ID: "d2", Name: "退课乙", Status: model.MemberStatusDropped},
	)
	r.GroupSets = []model.GroupSet{
		{ID: "gs-1", Name: "项目组", Kind: model.GroupSetKindUnlinked,
			Groups: []model.Group{
				{ID: "g1", Name: "A 组", MemberIDs: []string{"s1", "s2", "s3", "s4"}},
				{ID: "g2", Name: "B 组", MemberIDs: []string{"s5", "s6", "s7", "d1"}},
			}},
	}
	r.Assignments = []model.Assignment{
		{ID: "a1", Name: "期末项目", GroupSetID: "gs-1", AssignmentType: model.AssignmentTypeClassWide},
	}
	return r
}

func TestBuildAssignmentCoverage_Scenario(t *testing.T) {
	roster := coverageRoster()
	cov := BuildAssignmentCoverage(roster, &roster.Assignments[0])

	if cov.ActiveCount != 10 {
		t.Errorf("期望 ActiveCount=10，实际 %d", cov.ActiveCount)
	}
	if cov.AssignedActiveCount != 7 {
		t.Errorf("期望 AssignedActiveCount=7，实际 %d", cov.AssignedActiveCount)
	}
	if len(cov.UnassignedActiveStudents) != 3 {
		t.Fatalf("期望 3 名未分组活跃学生，实际 %d", len(cov.UnassignedActiveStudents))
	}
	// 返回完整成员记录而非裸 ID
	if cov.UnassignedActiveStudents[0].ID != "s8" || cov.UnassignedActiveStudents[0].Name != "学生8" {
		t.Errorf("未分组学生应为完整记录，实际 %+v", cov.UnassignedActiveStudents[0])
	}
}

func TestBuildAssignmentCoverage_MissingGroupSet(t *testing.T) {
	roster := coverageRoster()
	roster.Assignments[0].GroupSetID = "nonexistent"

	cov := BuildAssignmentCoverage(roster, &roster.Assignments[0])
	if cov.AssignedActiveCount != 0 {
		t.Errorf("分组集不存在时无人被覆盖，实际 %d", cov.AssignedActiveCount)
	}
	if len(cov.UnassignedActiveStudents) != 10 {
		t.Errorf("全部活跃学生应为未分组，实际 %d", len(cov.UnassignedActiveStudents))
	}
}

func TestBuildAssignmentCoverage_NilInputs(t *testing.T) {
	roster := coverageRoster()
	if BuildAssignmentCoverage(nil, &roster.Assignments[0]) != nil {
		t.Error("名册为 nil 时应返回 nil")
	}
	if BuildAssignmentCoverage(roster, nil) != nil {
		t.Error("作业为 nil 时应返回 nil")
	}
}
