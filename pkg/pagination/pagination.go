// Package pagination 页码分页参数与分页元数据
//
// 约定：
//   - page、per_page从1开始，小于1时回落为默认值（1、10）
//   - per_page不设上限
//   - 超出范围的页码返回空列表，不视为错误
package pagination

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Page 分页请求参数
type Page struct {
	Page    int
	PerPage int
}

// New 创建并规范化分页参数
func New(page, perPage int) Page {
	return Page{Page: page, PerPage: perPage}.Normalize()
}

// Normalize 非法值回落为默认值
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Offset SQL OFFSET
// 乘积溢出时取math.MaxInt，保证落在结果集之后（gorm对<=0的offset不生成OFFSET子句）
func (p Page) Offset() int {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// Limit SQL LIMIT
func (p Page) Limit() int {
	return p.Normalize().PerPage
}

// Meta 分页元数据（响应中的pagination字段）
type Meta struct {
	Page    int   `json:"page" example:"1"`
	PerPage int   `json:"per_page" example:"10"`
	Total   int64 `json:"total" example:"42"`
	Pages   int   `json:"pages" example:"5"`
}

// NewMeta total为过滤后的总数，pages = ceil(total / per_page)
func NewMeta(p Page, total int64) Meta {
	p = p.Normalize()
	pages := int(total / int64(p.PerPage))
	if total%int64(p.PerPage) != 0 {
		pages++
	}
	return Meta{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
	}
}
