package errors

import "errors"

var (
	// ErrVersionConflict 乐观锁冲突：文档已被其他操作修改
	ErrVersionConflict = errors.New("文档已被其他操作修改，请刷新后重试")
	// ErrDocumentNotFound 档案文档未登记
	ErrDocumentNotFound = errors.New("档案文档不存在")
)
