package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 状态码
	code int
	// HTTP 状态码
	statusCode int
	// 状态
	status bool
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code bound to an HTTP status
// NewError 注册一个失败码并绑定 HTTP 状态码
func NewError(code int, statusCode int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, statusCode: statusCode, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code bound to an HTTP status
// NewSuss 注册一个成功码并绑定 HTTP 状态码
func NewSuss(code int, statusCode int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, statusCode: statusCode, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
// 链式的 WithData/WithDetails 作用在副本上，避免污染注册表里的原对象
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		statusCode: e.statusCode,
		status:     e.status,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

// MsgFor 按请求级语言返回消息
func (e *Code) MsgFor(language string) string {
	return e.Lang.GetMessageFor(language)
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveDetails = e.haveDetails
	c.details = e.details
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveData = e.haveData
	c.data = e.data
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

// StatusCode returns the HTTP status the code maps to
// StatusCode 返回该码对应的 HTTP 状态码
func (e *Code) StatusCode() int {
	if e.statusCode == 0 {
		return http.StatusOK
	}
	return e.statusCode
}
