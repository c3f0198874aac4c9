package handler

import (
	"github.com/gin-gonic/gin"

	apprelation "github.com/xiebiao/bookstore-api/internal/application/relation"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// RelationHandler 用户-图书关系HTTP处理器
type RelationHandler struct {
	updateRelationUseCase *apprelation.UpdateRelationUseCase
}

// NewRelationHandler 创建关系处理器
func NewRelationHandler(updateRelationUseCase *apprelation.UpdateRelationUseCase) *RelationHandler {
	return &RelationHandler{updateRelationUseCase: updateRelationUseCase}
}

// UpdateRelation 创建或更新当前用户与图书的关系
// PUT和PATCH语义相同：缺失的字段保持不变
// @Summary      更新图书关系
// @Description  点赞、收藏、评分(1-5，null撤销评分)，评分变化后重算图书平均分
// @Tags         图书关系
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        book    path int                 true "图书ID"
// @Param        request body dto.RelationRequest true "关系字段"
// @Success      200 {object} dto.RelationResponse
// @Failure      400 {object} map[string][]string "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /book_relation/{book}/ [patch]
// @Router       /book_relation/{book}/ [put]
func (h *RelationHandler) UpdateRelation(c *gin.Context) {
	id, ok := bookID(c, "book")
	if !ok {
		return
	}

	// 请求体在图书存在且已登录之后才解析
	decode := func() (relation.Patch, error) {
		var req dto.RelationRequest
		if err := dto.BindJSON(c, &req); err != nil {
			return relation.Patch{}, err
		}
		return req.ToPatch(), nil
	}

	result, err := h.updateRelationUseCase.Execute(c.Request.Context(), middleware.Actor(c), id, decode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRelationResponse(result.Relation))
}
