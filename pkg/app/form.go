package app

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"

	"github.com/gin-gonic/gin"
)

// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// MapsToString 返回 字段 => 错误消息 的映射
func (v ValidErrors) MapsToString() map[string]string {
	maps := map[string]string{}
	for _, err := range v {
		maps[err.Key] = err.Message
	}
	return maps
}

// BindAndValid binds request parameters and translates validation failures
// BindAndValid 绑定请求参数并翻译校验失败信息
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return bindAndValid(c, c.ShouldBind(v))
}

// BindUriAndValid 绑定路径参数并翻译校验失败信息
func BindUriAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return bindAndValid(c, c.ShouldBindUri(v))
}

func bindAndValid(c *gin.Context, err error) (bool, ValidErrors) {
	var errs ValidErrors
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		trans, _ := c.Get("trans")
		translator, _ := trans.(ut.Translator)

		// translator 为空时 Translate 会退回原始错误文本
		for key, value := range verrs.Translate(translator) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}

	return true, nil
}
