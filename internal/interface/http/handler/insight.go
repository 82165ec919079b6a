package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// InsightHandler 书评HTTP处理器，所有接口都需要登录
type InsightHandler struct {
	insights *catalog.InsightUseCase
}

// NewInsightHandler 创建书评处理器
func NewInsightHandler(insights *catalog.InsightUseCase) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// List 书评列表
// @Summary      书评列表
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        page     query int false "页码" default(1)
// @Param        per_page query int false "每页数量" default(10)
// @Param        book_id  query int false "按图书过滤"
// @Success      200 {object} response.Response{data=[]dto.InsightResponse,pagination=pagination.Meta}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/insights [get]
func (h *InsightHandler) List(c *gin.Context) {
	bookID, ok := optionalUintQuery(c, "book_id")
	if !ok {
		return
	}
	list, meta, err := h.insights.List(c.Request.Context(), insight.ListParams{
		BookID: bookID,
		Page:   pageQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.NewInsightList(list), meta)
}

// Get 书评详情
// @Summary      书评详情
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response{data=dto.InsightResponse}
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/insights/{id} [get]
func (h *InsightHandler) Get(c *gin.Context) {
	id, ok := parseID(c, insight.ErrInsightNotFound)
	if !ok {
		return
	}
	i, err := h.insights.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewInsightResponse(i))
}

// Create 创建书评
// @Summary      创建书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateInsightRequest true "书评信息"
// @Success      201 {object} response.Response{data=dto.InsightResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/insights [post]
func (h *InsightHandler) Create(c *gin.Context) {
	var req dto.CreateInsightRequest
	if _, ok := bindJSON(c, &req, dto.InsightNotNull...); !ok {
		return
	}
	i, err := h.insights.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Insight created successfully", dto.NewInsightResponse(i))
}

// Update 更新书评(局部更新)
// @Summary      更新书评
// @Tags         书评
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                      true "书评ID"
// @Param        request body dto.UpdateInsightRequest true "待修改字段"
// @Success      200 {object} response.Response{data=dto.InsightResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "书评或图书不存在"
// @Router       /api/v1/insights/{id} [put]
func (h *InsightHandler) Update(c *gin.Context) {
	id, ok := parseID(c, insight.ErrInsightNotFound)
	if !ok {
		return
	}
	var req dto.UpdateInsightRequest
	doc, ok := bindJSON(c, &req, dto.InsightNotNull...)
	if !ok {
		return
	}
	i, err := h.insights.Update(c.Request.Context(), id, req.ToPatch(doc))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Insight updated successfully", dto.NewInsightResponse(i))
}

// Delete 删除书评
// @Summary      删除书评
// @Tags         书评
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/insights/{id} [delete]
func (h *InsightHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, insight.ErrInsightNotFound)
	if !ok {
		return
	}
	if err := h.insights.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Insight deleted successfully", nil)
}
