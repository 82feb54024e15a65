package model

// AssignmentType 作业类型
type AssignmentType string

const (
	// AssignmentTypeClassWide 全员作业：所有活跃学生都应被某个分组覆盖
	AssignmentTypeClassWide AssignmentType = "class_wide"
	// AssignmentTypeOptIn 自选作业：允许部分学生不参加
	AssignmentTypeOptIn AssignmentType = "opt_in"
)

// Assignment 作业 — 引用（不拥有）一个分组集
type Assignment struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	GroupSetID     string         `json:"group_set_id"`
	AssignmentType AssignmentType `json:"assignment_type"`
}
