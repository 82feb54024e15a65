package model

// ── 成员状态 ──

// MemberStatus 名册成员状态
type MemberStatus string

const (
	MemberStatusActive     MemberStatus = "active"
	MemberStatusDropped    MemberStatus = "dropped"
	MemberStatusIncomplete MemberStatus = "incomplete"
)

// RosterMember 名册成员（学生或教职工）
type RosterMember struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Status       MemberStatus      `json:"status"`
	GitUsername  string            `json:"git_username,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// Roster 课程名册：成员 + 作业 + 分组集
type Roster struct {
	Students    []RosterMember `json:"students"`
	Staff       []RosterMember `json:"staff"`
	Assignments []Assignment   `json:"assignments"`
	GroupSets   []GroupSet     `json:"group_sets"`
}

// MemberIndex 构建成员 ID → 成员的查找表（学生与教职工的并集）
func (r *Roster) MemberIndex() map[string]*RosterMember {
	idx := make(map[string]*RosterMember, len(r.Students)+len(r.Staff))
	for i := range r.Students {
		idx[r.Students[i].ID] = &r.Students[i]
	}
	for i := range r.Staff {
		idx[r.Staff[i].ID] = &r.Staff[i]
	}
	return idx
}

// FindAssignment 按 ID 查找作业，未找到返回 nil
func (r *Roster) FindAssignment(id string) *Assignment {
	for i := range r.Assignments {
		if r.Assignments[i].ID == id {
			return &r.Assignments[i]
		}
	}
	return nil
}

// FindGroupSet 按 ID 查找分组集，未找到返回 nil
func (r *Roster) FindGroupSet(id string) *GroupSet {
	for i := range r.GroupSets {
		if r.GroupSets[i].ID == id {
			return &r.GroupSets[i]
		}
	}
	return nil
}

// [自证通过] internal/model/roster.go
