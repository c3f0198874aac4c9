package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookstore-api/internal/application/book"
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按价格过滤、按name/author_name搜索、按字段排序(前缀-为降序)
// @Tags         图书
// @Produce      json
// @Param        price    query string false "价格精确匹配"
// @Param        search   query string false "搜索关键词"
// @Param        ordering query string false "排序字段: id,name,price,author_name,owner,rating,annotated_likes"
// @Success      200 {array}  dto.BookResponse
// @Failure      400 {object} map[string][]string "参数错误"
// @Router       /book/ [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	req := appbook.ListBooksRequest{
		Search:   query.Search,
		Ordering: query.Ordering,
	}
	if query.Price != "" {
		price, err := book.ParsePrice(query.Price)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.Price = &price
	}

	views, err := h.listBooksUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponses(views))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /book/{id}/ [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := bookID(c, "id")
	if !ok {
		return
	}

	view, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponse(view))
}

// CreateBook 创建图书，owner为当前登录用户
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {object} map[string][]string "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Router       /book/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor == nil {
		response.Error(c, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.BookRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err := req.ToPatch().Validate(true); err != nil {
		response.Error(c, err)
		return
	}

	var createReq appbook.CreateBookRequest
	if req.Name != nil {
		createReq.Name = *req.Name
	}
	if req.Price != nil {
		createReq.Price = *req.Price
	}
	if req.AuthorName != nil {
		createReq.AuthorName = *req.AuthorName
	}

	view, err := h.createBookUseCase.Execute(c.Request.Context(), actor, createReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToBookResponse(view))
}

// UpdateBook 全量更新图书(仅owner或管理员)
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} map[string][]string "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      403 {object} response.ErrorBody "无权限"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /book/{id}/ [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	h.update(c, true)
}

// PartialUpdateBook 部分更新图书，缺失字段保持不变
// @Summary      部分更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "要修改的字段"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} map[string][]string "参数错误"
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      403 {object} response.ErrorBody "无权限"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /book/{id}/ [patch]
func (h *BookHandler) PartialUpdateBook(c *gin.Context) {
	h.update(c, false)
}

func (h *BookHandler) update(c *gin.Context, full bool) {
	id, ok := bookID(c, "id")
	if !ok {
		return
	}

	// 请求体由用例在 404 → 401 → 403 检查之后解析
	decode := func() (book.Patch, error) {
		var req dto.BookRequest
		if err := dto.BindJSON(c, &req); err != nil {
			return book.Patch{}, err
		}
		return req.ToPatch(), nil
	}

	view, err := h.updateBookUseCase.Execute(c.Request.Context(), middleware.Actor(c), id, decode, full)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponse(view))
}

// DeleteBook 删除图书(仅owner或管理员)
// @Summary      删除图书
// @Tags         图书
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      401 {object} response.ErrorBody "未登录"
// @Failure      403 {object} response.ErrorBody "无权限"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /book/{id}/ [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// bookID 解析路径中的图书ID，非法ID按不存在处理
func bookID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, book.ErrBookNotFound)
		return 0, false
	}
	return uint(id), true
}
