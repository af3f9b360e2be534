package dto

// TokenMintRequest 开发用令牌签发请求
type TokenMintRequest struct {
	UserID string `json:"userId" form:"userId" binding:"required"`
}

// TokenDTO 令牌响应
type TokenDTO struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}
