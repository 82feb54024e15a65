package model

// IssueCardKind 问题卡片类型
type IssueCardKind string

const (
	CardUnknownStudents      IssueCardKind = "unknown_students"
	CardEmptyGroups          IssueCardKind = "empty_groups"
	CardRosterValidation     IssueCardKind = "roster_validation"
	CardAssignmentValidation IssueCardKind = "assignment_validation"
)

// IssueCard 展示就绪的问题摘要 — 每次聚合调用现算，从不持久化
type IssueCard struct {
	ID           string        `json:"id"`
	Kind         IssueCardKind `json:"kind"`
	AssignmentID string        `json:"assignment_id,omitempty"`
	GroupSetID   string        `json:"group_set_id,omitempty"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`

	// Count 恒等于去重后受影响 ID 集合的基数
	Count     int       `json:"count"`
	Details   []string  `json:"details,omitempty"`
	IssueKind IssueKind `json:"issue_kind,omitempty"`
}
