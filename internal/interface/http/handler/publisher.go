package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// PublisherHandler 出版社HTTP处理器
type PublisherHandler struct {
	publishers *catalog.PublisherUseCase
}

// NewPublisherHandler 创建出版社处理器
func NewPublisherHandler(publishers *catalog.PublisherUseCase) *PublisherHandler {
	return &PublisherHandler{publishers: publishers}
}

// List 出版社列表/按名称搜索
// @Summary      出版社列表
// @Tags         出版社
// @Produce      json
// @Param        page     query int    false "页码" default(1)
// @Param        per_page query int    false "每页数量" default(10)
// @Param        name     query string false "名称关键字"
// @Success      200 {object} response.Response{data=[]dto.PublisherResponse,pagination=pagination.Meta}
// @Router       /api/v1/publishers [get]
// @Router       /api/v1/publishers/search [get]
func (h *PublisherHandler) List(c *gin.Context) {
	list, meta, err := h.publishers.List(c.Request.Context(), publisher.ListParams{
		Name: c.Query("name"),
		Page: pageQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewPublisherList(list), meta)
}

// Get 出版社详情
// @Summary      出版社详情
// @Tags         出版社
// @Produce      json
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [get]
func (h *PublisherHandler) Get(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrPublisherNotFound)
	if !ok {
		return
	}
	p, err := h.publishers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewPublisherResponse(p))
}

// Books 出版社的图书
// @Summary      出版社的图书
// @Tags         出版社
// @Produce      json
// @Param        id       path  int true  "出版社ID"
// @Param        page     query int false "页码" default(1)
// @Param        per_page query int false "每页数量" default(10)
// @Success      200 {object} response.Response{data=[]dto.BookResponse,pagination=pagination.Meta}
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id}/books [get]
func (h *PublisherHandler) Books(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrPublisherNotFound)
	if !ok {
		return
	}
	list, meta, err := h.publishers.Books(c.Request.Context(), id, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewBookList(list), meta)
}

// Create 创建出版社
// @Summary      创建出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      201 {object} response.Response{data=dto.PublisherResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/publishers [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if _, ok := bindJSON(c, &req, dto.PublisherNotNull...); !ok {
		return
	}
	p, err := h.publishers.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Publisher created successfully", dto.NewPublisherResponse(p))
}

// Update 更新出版社(局部更新)
// @Summary      更新出版社
// @Tags         出版社
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                        true "出版社ID"
// @Param        request body dto.UpdatePublisherRequest true "待修改字段"
// @Success      200 {object} response.Response{data=dto.PublisherResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrPublisherNotFound)
	if !ok {
		return
	}
	var req dto.UpdatePublisherRequest
	doc, ok := bindJSON(c, &req, dto.PublisherNotNull...)
	if !ok {
		return
	}
	p, err := h.publishers.Update(c.Request.Context(), id, req.ToPatch(doc))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Publisher updated successfully", dto.NewPublisherResponse(p))
}

// Delete 删除出版社
// @Summary      删除出版社
// @Description  关联图书的publisher_id置为null
// @Tags         出版社
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "出版社ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/publishers/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, publisher.ErrPublisherNotFound)
	if !ok {
		return
	}
	if err := h.publishers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Publisher deleted successfully", nil)
}
