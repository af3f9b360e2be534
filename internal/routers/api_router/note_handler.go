package api_router

import (
	"github.com/haierkeys/smart-note-api/internal/app"
	"github.com/haierkeys/smart-note-api/internal/dto"
	pkgapp "github.com/haierkeys/smart-note-api/pkg/app"
	"github.com/haierkeys/smart-note-api/pkg/code"
	apperrors "github.com/haierkeys/smart-note-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 创建一条新笔记，服务端自动为内容生成摘要
// @Tags 笔记
// @Security UserAuthToken
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 201 {object} pkgapp.Res{data=service.NoteDTO} "创建成功"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.Create err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService().Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(note))
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 获取当前用户的全部笔记，支持 tag 精确过滤与 q 标题/内容模糊搜索
// @Tags 笔记
// @Security UserAuthToken
// @Produce json
// @Param params query dto.NoteListRequest true "过滤参数"
// @Success 200 {object} pkgapp.Res{data=[]service.NoteDTO} "成功"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.List err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notes, err := h.App.NoteService().List(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Description 根据 ID 获取当前用户的单条笔记，他人的笔记返回未找到
// @Tags 笔记
// @Security UserAuthToken
// @Produce json
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=service.NoteDTO} "成功"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uri := &dto.NoteURI{}

	valid, errs := pkgapp.BindUriAndValid(c, uri)
	if !valid {
		h.App.Logger().Error("NoteHandler.Get.BindUriAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.Get err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService().Get(ctx, uid, uri.ID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Update 更新笔记
// @Summary 更新笔记
// @Description 整体替换笔记的标题、内容与标签，摘要保留创建时的值
// @Tags 笔记
// @Security UserAuthToken
// @Accept json
// @Produce json
// @Param id path int true "笔记 ID"
// @Param params body dto.NoteUpdateRequest true "更新参数"
// @Success 200 {object} pkgapp.Res{data=service.NoteDTO} "成功"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uri := &dto.NoteURI{}

	valid, errs := pkgapp.BindUriAndValid(c, uri)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindUriAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs = pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.Update err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	note, err := h.App.NoteService().Update(ctx, uid, uri.ID, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(note))
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 删除当前用户的单条笔记，未删除任何记录时返回未找到
// @Tags 笔记
// @Security UserAuthToken
// @Param id path int true "笔记 ID"
// @Success 204 "删除成功"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	uri := &dto.NoteURI{}

	valid, errs := pkgapp.BindUriAndValid(c, uri)
	if !valid {
		h.App.Logger().Error("NoteHandler.Delete.BindUriAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.Delete err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService().Delete(ctx, uid, uri.ID); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessNoContent)
}

// Stats 获取笔记统计
// @Summary 获取笔记统计
// @Description 统计当前用户的笔记总数
// @Tags 笔记
// @Security UserAuthToken
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.NoteStatsResponse} "成功"
// @Router /api/stats [get]
func (h *NoteHandler) Stats(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUserID(c)
	if uid == "" {
		h.App.Logger().Error("NoteHandler.Stats err uid empty")
		response.ToResponse(code.ErrorNotUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	stats, err := h.App.NoteService().Stats(ctx, uid)
	if err != nil {
		h.logError(ctx, "NoteHandler.Stats", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(stats))
}
