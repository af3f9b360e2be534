package code

import "net/http"

// 成功码
var (
	Success = NewSuss(200, http.StatusOK, lang{
		en:    "Success",
		zh_cn: "成功",
	})
	SuccessCreated = NewSuss(201, http.StatusCreated, lang{
		en:    "Created",
		zh_cn: "创建成功",
	})
	SuccessNoContent = NewSuss(204, http.StatusNoContent, lang{
		en:    "No Content",
		zh_cn: "无内容",
	})
)

// 失败码
var (
	Failed = NewError(1, http.StatusInternalServerError, lang{
		en:    "Failed",
		zh_cn: "失败",
	})
	ErrorInvalidParams = NewError(10000, http.StatusBadRequest, lang{
		en:    "Invalid Params",
		zh_cn: "入参错误",
	})
	ErrorNotUserAuthToken = NewError(10001, http.StatusUnauthorized, lang{
		en:    "Missing Auth Token",
		zh_cn: "缺少用户认证令牌",
	})
	ErrorInvalidUserAuthToken = NewError(10002, http.StatusUnauthorized, lang{
		en:    "Invalid Or Expired Auth Token",
		zh_cn: "用户认证令牌无效或已过期",
	})
	ErrorNotFound = NewError(10003, http.StatusNotFound, lang{
		en:    "Note Not Found",
		zh_cn: "笔记不存在",
	})
	ErrorTokenMintDisabled = NewError(10004, http.StatusForbidden, lang{
		en:    "Token Mint Disabled",
		zh_cn: "令牌签发功能未启用",
	})
	ErrorTokenGenerate = NewError(10005, http.StatusInternalServerError, lang{
		en:    "Token Generate Failed",
		zh_cn: "令牌生成失败",
	})
	ErrorServerInternal = NewError(10099, http.StatusInternalServerError, lang{
		en:    "Server Internal Error",
		zh_cn: "服务器内部错误",
	})
	ErrorTooManyRequests = NewError(10098, http.StatusTooManyRequests, lang{
		en:    "Too Many Requests",
		zh_cn: "请求过于频繁",
	})
	ErrorNotFoundAPI = NewError(10097, http.StatusNotFound, lang{
		en:    "API Not Found",
		zh_cn: "接口不存在",
	})
)
