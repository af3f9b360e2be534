package api_router

import (
	"github.com/haierkeys/smart-note-api/internal/app"
	"github.com/haierkeys/smart-note-api/internal/dto"
	pkgapp "github.com/haierkeys/smart-note-api/pkg/app"
	"github.com/haierkeys/smart-note-api/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 认证 API 路由处理器
type AuthHandler struct {
	*Handler
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(a),
	}
}

// TokenMint 为指定用户签发访问 Token
// 仅在配置开启时可用，供本地开发与集成测试使用
// @Summary 签发访问 Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param params body dto.TokenMintRequest true "签发参数"
// @Success 200 {object} pkgapp.Res{data=dto.TokenDTO} "成功"
// @Router /api/auth/token [post]
func (h *AuthHandler) TokenMint(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if !h.App.Config().Security.TokenMintEnable {
		response.ToResponse(code.ErrorTokenMintDisabled)
		return
	}

	params := &dto.TokenMintRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("AuthHandler.TokenMint.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	token, err := h.App.TokenManager().Generate(params.UserID)
	if err != nil {
		h.App.Logger().Error("AuthHandler.TokenMint generate err", zap.Error(err))
		response.ToResponse(code.ErrorTokenGenerate)
		return
	}

	response.ToResponse(code.Success.WithData(dto.TokenDTO{
		UserID: params.UserID,
		Token:  token,
	}))
}
