package store

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
	pkgerrors "github.com/repo-edu/repo-edu-sub004/pkg/errors"
)

func newTestStore() *DocumentStore {
	return NewDocumentStore(zap.NewNop())
}

func testDoc(id string) *model.ProfileDocument {
	return &model.ProfileDocument{
		ProfileID: id,
		Settings: model.ProfileSettings{
			Course: model.CourseIdentity{ID: "c-" + id, Name: "课程 " + id},
		},
		Roster: &model.Roster{},
	}
}

// ════════════════════════════════════════════════════════════
// 文档登记与读取
// ════════════════════════════════════════════════════════════

func TestDocumentStore_PutAndGet(t *testing.T) {
	st := newTestStore()

	if !st.PutDocument(testDoc("p1")) {
		t.Fatal("首次登记应成功")
	}
	doc, ok := st.GetDocument("p1")
	if !ok {
		t.Fatal("登记后应能读取")
	}
	if doc.Version != 1 {
		t.Errorf("新登记文档版本应为 1，实际 %d", doc.Version)
	}

	if st.PutDocument(testDoc("p1")) {
		t.Error("同 ID 重复登记应返回 false")
	}
}

func TestDocumentStore_GetMissing(t *testing.T) {
	st := newTestStore()
	if _, ok := st.GetDocument("ghost"); ok {
		t.Error("不存在的档案不应可读")
	}
}

func TestDocumentStore_ListDocuments(t *testing.T) {
	st := newTestStore()
	st.PutDocument(testDoc("p1"))
	st.PutDocument(testDoc("p2"))

	if docs := st.ListDocuments(); len(docs) != 2 {
		t.Errorf("期望 2 个文档，实际 %d", len(docs))
	}
}

// ════════════════════════════════════════════════════════════
// UpdateDocument（乐观锁）
// ════════════════════════════════════════════════════════════

func TestDocumentStore_Update_VersionBump(t *testing.T) {
	st := newTestStore()
	st.PutDocument(testDoc("p1"))

	err := st.UpdateDocument("p1", 1, func(d *model.ProfileDocument) error {
		d.Settings.GitConnection.Provider = "github"
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateDocument 应成功: %v", err)
	}

	doc, _ := st.GetDocument("p1")
	if doc.Version != 2 {
		t.Errorf("更新后版本应为 2，实际 %d", doc.Version)
	}
	if doc.Settings.GitConnection.Provider != "github" {
		t.Error("变更应已落入文档")
	}
}

func TestDocumentStore_Update_VersionConflict(t *testing.T) {
	st := newTestStore()
	st.PutDocument(testDoc("p1"))

	err := st.UpdateDocument("p1", 7, func(d *model.ProfileDocument) error { return nil })
	if !errors.Is(err, pkgerrors.ErrVersionConflict) {
		t.Errorf("期望 ErrVersionConflict，实际: %v", err)
	}

	// expectedVersion=0 跳过版本检查
	if err := st.UpdateDocument("p1", 0, func(d *model.ProfileDocument) error { return nil }); err != nil {
		t.Errorf("expectedVersion=0 应跳过检查: %v", err)
	}
}

func TestDocumentStore_Update_NotFound(t *testing.T) {
	st := newTestStore()
	err := st.UpdateDocument("ghost", 0, func(d *model.ProfileDocument) error { return nil })
	if !errors.Is(err, pkgerrors.ErrDocumentNotFound) {
		t.Errorf("期望 ErrDocumentNotFound，实际: %v", err)
	}
}

func TestDocumentStore_Update_ApplyErrorNoBump(t *testing.T) {
	st := newTestStore()
	st.PutDocument(testDoc("p1"))

	wantErr := errors.New("变更失败")
	if err := st.UpdateDocument("p1", 0, func(d *model.ProfileDocument) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("期望透传 apply 错误，实际: %v", err)
	}

	doc, _ := st.GetDocument("p1")
	if doc.Version != 1 {
		t.Errorf("apply 失败时版本不应递增，实际 %d", doc.Version)
	}
}

// ════════════════════════════════════════════════════════════
// 活动档案
// ════════════════════════════════════════════════════════════

func TestDocumentStore_SetActive(t *testing.T) {
	st := newTestStore()
	st.PutDocument(testDoc("p1"))

	if st.SetActive("ghost") {
		t.Error("激活未登记档案应返回 false")
	}
	if !st.SetActive("p1") {
		t.Fatal("激活已登记档案应成功")
	}
	if st.ActiveProfileID() != "p1" {
		t.Errorf("期望活动档案 p1，实际 %q", st.ActiveProfileID())
	}

	doc, ok := st.ActiveDocument()
	if !ok || doc.ProfileID != "p1" {
		t.Error("ActiveDocument 应返回活动档案文档")
	}
}

func TestDocumentStore_ActiveDocument_None(t *testing.T) {
	st := newTestStore()
	if _, ok := st.ActiveDocument(); ok {
		t.Error("无活动档案时 ActiveDocument 应返回 false")
	}
}

// ════════════════════════════════════════════════════════════
// 校验结果与变更通知
// ════════════════════════════════════════════════════════════

func TestDocumentStore_Validation(t *testing.T) {
	st := newTestStore()

	if st.Validation("p1") != nil {
		t.Error("未发布过校验结果时应返回 nil")
	}

	results := &model.ValidationResults{
		Roster: &model.ValidationResult{Issues: []model.ValidationIssue{
			{Kind: model.IssueMissingEmail, AffectedIDs: []string{"s1"}},
		}},
	}
	st.SetValidation("p1", results)

	got := st.Validation("p1")
	if got == nil || len(got.Roster.Issues) != 1 {
		t.Errorf("应读回最新校验结果，实际 %+v", got)
	}
}

func TestDocumentStore_SubscribeNotify(t *testing.T) {
	st := newTestStore()

	var calls int
	st.Subscribe(func() { calls++ })

	// 4 次写操作：登记 / 激活 / 发布校验 / 更新
	st.PutDocument(testDoc("p1"))
	st.SetActive("p1")
	st.SetValidation("p1", nil)
	_ = st.UpdateDocument("p1", 0, func(d *model.ProfileDocument) error { return nil })

	if calls != 4 {
		t.Errorf("每次写操作都应触发回调，期望 4 次，实际 %d", calls)
	}

	// 失败的写操作不触发回调
	_ = st.UpdateDocument("ghost", 0, func(d *model.ProfileDocument) error { return nil })
	if calls != 4 {
		t.Errorf("失败的写操作不应触发回调，实际 %d", calls)
	}
}
