package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 领域实体在这里转换为dto，不直接序列化
type AuthorHandler struct {
	authors *catalog.AuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authors *catalog.AuthorUseCase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// List 作者列表/按姓名搜索
// @Summary      作者列表
// @Description  分页查询作者，name不为空时按名或姓模糊匹配(不区分大小写)
// @Tags         作者
// @Produce      json
// @Param        page     query int    false "页码" default(1)
// @Param        per_page query int    false "每页数量" default(10)
// @Param        name     query string false "姓名关键字"
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse,pagination=pagination.Meta}
// @Router       /api/v1/authors [get]
// @Router       /api/v1/authors/search [get]
func (h *AuthorHandler) List(c *gin.Context) {
	list, meta, err := h.authors.List(c.Request.Context(), author.ListParams{
		Name: c.Query("name"),
		Page: pageQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewAuthorList(list), meta)
}

// Get 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, author.ErrAuthorNotFound)
	if !ok {
		return
	}
	a, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthorResponse(a))
}

// Books 作者的图书
// @Summary      作者的图书
// @Tags         作者
// @Produce      json
// @Param        id       path  int true  "作者ID"
// @Param        page     query int false "页码" default(1)
// @Param        per_page query int false "每页数量" default(10)
// @Success      200 {object} response.Response{data=[]dto.BookResponse,pagination=pagination.Meta}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id}/books [get]
func (h *AuthorHandler) Books(c *gin.Context) {
	id, ok := parseID(c, author.ErrAuthorNotFound)
	if !ok {
		return
	}
	list, meta, err := h.authors.Books(c.Request.Context(), id, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewBookList(list), meta)
}

// Create 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if _, ok := bindJSON(c, &req, dto.AuthorNotNull...); !ok {
		return
	}
	a, err := h.authors.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Author created successfully", dto.NewAuthorResponse(a))
}

// Update 更新作者(局部更新)
// @Summary      更新作者
// @Description  只修改请求体中出现的字段，可空字段传null表示清空
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                     true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "待修改字段"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, author.ErrAuthorNotFound)
	if !ok {
		return
	}
	var req dto.UpdateAuthorRequest
	doc, ok := bindJSON(c, &req, dto.AuthorNotNull...)
	if !ok {
		return
	}
	a, err := h.authors.Update(c.Request.Context(), id, req.ToPatch(doc))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Author updated successfully", dto.NewAuthorResponse(a))
}

// Delete 删除作者
// @Summary      删除作者
// @Description  仍有图书的作者不能删除
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "作者仍有图书"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, author.ErrAuthorNotFound)
	if !ok {
		return
	}
	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Author deleted successfully", nil)
}
