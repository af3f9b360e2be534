package code

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDataDoesNotMutateRegistered(t *testing.T) {
	c := Success.WithData("payload")

	assert.Equal(t, "payload", c.Data())
	assert.True(t, c.HaveData())

	// 注册表里的原对象不受链式调用影响
	assert.Nil(t, Success.Data())
	assert.False(t, Success.HaveData())
}

func TestWithDetailsPreservesData(t *testing.T) {
	c := ErrorInvalidParams.WithData(map[string]string{"title": "required"}).WithDetails("title is required")

	assert.True(t, c.HaveData())
	assert.True(t, c.HaveDetails())
	assert.Equal(t, []string{"title is required"}, c.Details())

	// 反向链式同样保留两份信息
	d := ErrorInvalidParams.WithDetails("oops").WithData("x")
	assert.Equal(t, []string{"oops"}, d.Details())
	assert.Equal(t, "x", d.Data())
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusOK, Success.StatusCode())
	assert.Equal(t, http.StatusCreated, SuccessCreated.StatusCode())
	assert.Equal(t, http.StatusNoContent, SuccessNoContent.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrorInvalidParams.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, ErrorNotUserAuthToken.StatusCode())
	assert.Equal(t, http.StatusNotFound, ErrorNotFound.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, ErrorServerInternal.StatusCode())
}

func TestMsgForDoesNotTouchDefault(t *testing.T) {
	SetGlobalDefaultLang("en")

	assert.Equal(t, "成功", Success.MsgFor("zh_cn"))
	assert.Equal(t, "Success", Success.MsgFor("en"))

	// 未知语言回退到 en，空语言取进程默认值
	assert.Equal(t, "Success", Success.MsgFor("fr"))
	assert.Equal(t, "Success", Success.MsgFor(""))

	// 请求级取值不改变进程默认语言
	assert.Equal(t, "en", GetGlobalDefaultLang())
}

func TestLangConcurrentAccess(t *testing.T) {
	SetGlobalDefaultLang("en")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		lang := "en"
		if i%2 == 0 {
			lang = "zh_cn"
		}
		wg.Add(2)
		go func(l string) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = Success.MsgFor(l)
			}
		}(lang)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = Success.Msg()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "en", GetGlobalDefaultLang())
}

func TestLangMessage(t *testing.T) {
	SetGlobalDefaultLang("en")
	assert.Equal(t, "Success", Success.Msg())

	SetGlobalDefaultLang("zh_cn")
	assert.Equal(t, "成功", Success.Msg())

	SetGlobalDefaultLang("en")
}
