// Package patch 局部更新（PATCH语义）辅助
//
// 设计说明：
// 1. JSON绑定到结构体后无法区分"未提供"与"显式null"
// 2. Doc保存请求体的顶层键集合，用于判断字段是否出现
// 3. Field[T]表示"是否设置 + 新值"，由领域实体的Apply统一应用
package patch

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Doc 请求体顶层键 → 原始JSON
type Doc map[string]json.RawMessage

// Parse 解析请求体，空请求体视为空文档
func Parse(body []byte) (Doc, error) {
	doc := Doc{}
	if len(bytes.TrimSpace(body)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Has 字段是否出现在请求体中（包括null）
func (d Doc) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// IsNull 字段是否显式为null
func (d Doc) IsNull(key string) bool {
	raw, ok := d[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// NullKeys 返回给定字段中显式为null的字段（有序）
// 用于拒绝对必填字段赋null
func (d Doc) NullKeys(keys ...string) []string {
	var nulls []string
	for _, k := range keys {
		if d.IsNull(k) {
			nulls = append(nulls, k)
		}
	}
	sort.Strings(nulls)
	return nulls
}

// Field 可选更新字段
type Field[T any] struct {
	Set   bool
	Value T
}

// Value 非空字段：指针非nil即视为设置
func Value[T any](v *T) Field[T] {
	if v == nil {
		return Field[T]{}
	}
	return Field[T]{Set: true, Value: *v}
}

// Nullable 可空字段：出现即设置，null对应nil
func Nullable[T any](d Doc, key string, v *T) Field[*T] {
	if !d.Has(key) {
		return Field[*T]{}
	}
	return Field[*T]{Set: true, Value: v}
}

// Set 构造已设置字段
func Set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Apply 已设置时写入dst
func (f Field[T]) Apply(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}
