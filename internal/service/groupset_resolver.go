package service

import (
	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

// ResolveGroupSetGroups 将分组集的成员声明对齐到名册本地 ID 空间。
//
//   - linked 集：使用上游（LMS 同步层）预解析好的 resolved_member_ids，
//     unresolved_count 原样透传供展示
//   - copied / unlinked / system 集：member_ids 本身即名册本地 ID
//
// 不修改输入，返回全新切片。
func ResolveGroupSetGroups(roster *model.Roster, set *model.GroupSet) []model.ResolvedGroup {
	if roster == nil || set == nil {
		return nil
	}

	resolved := make([]model.ResolvedGroup, 0, len(set.Groups))
	for _, g := range set.Groups {
		rg := model.ResolvedGroup{
			ID:   g.ID,
			Name: g.Name,
		}
		if set.Kind == model.GroupSetKindLinked {
			rg.MemberIDs = append([]string(nil), g.ResolvedMemberIDs...)
			rg.UnresolvedCount = g.UnresolvedCount
		} else {
			rg.MemberIDs = append([]string(nil), g.MemberIDs...)
		}
		resolved = append(resolved, rg)
	}
	return resolved
}
