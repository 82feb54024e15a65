package service

import (
	"testing"

	"github.com/repo-edu/repo-edu-sub004/internal/model"
)

func sampleState() model.SaveableState {
	return model.SaveableState{
		GitConnection: model.GitConnection{
			Provider:     "github",
			BaseURL:      "https://github.com",
			Organization: "cs101-fall",
		},
		Operations: model.OperationsConfig{DefaultBranch: "main", ParallelClones: 4},
		Exports:    model.ExportConfig{Format: "xlsx"},
		Roster: &model.Roster{
			Students: []model.RosterMember{
				{ID: "s1", Name: "张三", Email: "zhang@example.com", Status: model.MemberStatusActive},
				{ID: "s2", Name: "李四", Email: "li@example.com", Status: model.MemberStatusActive},
			},
		},
	}
}

func TestHashSnapshot_Deterministic(t *testing.T) {
	a := HashSnapshot(sampleState())
	b := HashSnapshot(sampleState())
	if a != b {
		t.Errorf("相同状态哈希应一致，实际 %d != %d", a, b)
	}
}

func TestHashSnapshot_ContentSensitive(t *testing.T) {
	base := sampleState()
	changed := sampleState()
	changed.Roster.Students[0].Email = "new@example.com"

	if HashSnapshot(base) == HashSnapshot(changed) {
		t.Error("邮箱变更后哈希应不同")
	}
}

// 对象键序不影响哈希（JSON 规范化后 map 键按字典序输出）
func TestHashSnapshot_MapKeyOrderIndependent(t *testing.T) {
	m1 := map[string]string{}
	m1["alpha"] = "1"
	m1["beta"] = "2"
	m1["gamma"] = "3"

	m2 := map[string]string{}
	m2["gamma"] = "3"
	m2["alpha"] = "1"
	m2["beta"] = "2"

	if HashSnapshot(m1) != HashSnapshot(m2) {
		t.Error("插入顺序不同的同内容 map 哈希应一致")
	}
}

// 数组顺序参与哈希（名册列表有顺序语义）
func TestHashSnapshot_ArrayOrderSensitive(t *testing.T) {
	a := []string{"s1", "s2"}
	b := []string{"s2", "s1"}

	if HashSnapshot(a) == HashSnapshot(b) {
		t.Error("数组顺序不同时哈希应不同")
	}
}

// 哨兵值保留给 ForceDirty，任何真实状态都不应撞上
func TestHashSnapshot_NeverReturnsSentinel(t *testing.T) {
	inputs := []any{
		sampleState(),
		nil,
		"",
		0,
		map[string]string{},
		[]string{},
	}
	for _, in := range inputs {
		if HashSnapshot(in) == forcedDirtyHash {
			t.Errorf("HashSnapshot(%v) 不应返回哨兵值", in)
		}
	}
}
