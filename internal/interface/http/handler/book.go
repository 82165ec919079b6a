package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	books *catalog.BookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books *catalog.BookUseCase) *BookHandler {
	return &BookHandler{books: books}
}

// List 图书列表/按书名搜索
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Param        page     query int    false "页码" default(1)
// @Param        per_page query int    false "每页数量" default(10)
// @Param        title    query string false "书名关键字"
// @Success      200 {object} response.Response{data=[]dto.BookResponse,pagination=pagination.Meta}
// @Router       /api/v1/books [get]
// @Router       /api/v1/books/search [get]
func (h *BookHandler) List(c *gin.Context) {
	list, meta, err := h.books.List(c.Request.Context(), book.ListParams{
		Title: c.Query("title"),
		Page:  pageQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewBookList(list), meta)
}

// Get 图书详情(包含作者、出版社摘要)
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, book.ErrBookNotFound)
	if !ok {
		return
	}
	b, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// Insights 图书的书评
// @Summary      图书的书评
// @Tags         图书
// @Produce      json
// @Param        id       path  int true  "图书ID"
// @Param        page     query int false "页码" default(1)
// @Param        per_page query int false "每页数量" default(10)
// @Success      200 {object} response.Response{data=[]dto.InsightResponse,pagination=pagination.Meta}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/insights [get]
func (h *BookHandler) Insights(c *gin.Context) {
	id, ok := parseID(c, book.ErrBookNotFound)
	if !ok {
		return
	}
	list, meta, err := h.books.Insights(c.Request.Context(), id, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewInsightList(list), meta)
}

// Create 创建图书
// @Summary      创建图书
// @Description  作者、出版社必须存在，ISBN全局唯一
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误/ISBN已存在"
// @Failure      404 {object} response.Response "作者或出版社不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if _, ok := bindJSON(c, &req, dto.BookNotNull...); !ok {
		return
	}
	b, err := h.books.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Book created successfully", dto.NewBookResponse(b))
}

// Update 更新图书(局部更新)
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "待修改字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误/ISBN已存在"
// @Failure      404 {object} response.Response "图书、作者或出版社不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c, book.ErrBookNotFound)
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	doc, ok := bindJSON(c, &req, dto.BookNotNull...)
	if !ok {
		return
	}
	b, err := h.books.Update(c.Request.Context(), id, req.ToPatch(doc))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Book updated successfully", dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, book.ErrBookNotFound)
	if !ok {
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Book deleted successfully", nil)
}
