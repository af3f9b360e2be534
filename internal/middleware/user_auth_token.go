package middleware

import (
	"strings"

	"github.com/haierkeys/smart-note-api/pkg/app"
	"github.com/haierkeys/smart-note-api/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthTokenWithConfig 用户 Token 认证中间件（使用注入的密钥）
// 支持 Authorization 头（含 Bearer 前缀）、token 头与同名查询参数
func UserAuthTokenWithConfig(secretKey string, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		response := app.NewResponse(c)

		if s, exist := c.GetQuery("authorization"); exist {
			token = s
		} else if s, exist := c.GetQuery("Authorization"); exist {
			token = s
		} else if s := c.GetHeader("authorization"); len(s) != 0 {
			token = s
		} else if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		} else if s, exist := c.GetQuery("Token"); exist {
			token = s
		} else if s = c.GetHeader("token"); len(s) != 0 {
			token = s
		} else if s = c.GetHeader("Token"); len(s) != 0 {
			token = s
		}

		token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))

		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		if user, err := app.ParseTokenWithKey(token, secretKey, issuer); err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		} else {
			c.Set("user_token", user)
		}

		c.Next()
	}
}

// UserAuthStatic 静态主体认证中间件
// 不校验任何凭证，固定注入配置的身份，仅用于本地与测试环境
func UserAuthStatic(identity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_token", &app.UserEntity{UserID: identity})
		c.Next()
	}
}
