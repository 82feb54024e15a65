package dto

// ImportRosterResponse 名册导入结果
type ImportRosterResponse struct {
	ImportedCount int `json:"imported_count"`
	SkippedRows   int `json:"skipped_rows"`
}
