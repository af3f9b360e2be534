package code

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// lang type, used to store English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

// Default language is English // 默认语言为英文
// 进程级默认值，只应在启动阶段设置，请求级语言走 GetMessageFor
var (
	lngMu sync.RWMutex
	lng   = "en"
)

const FALLBACK_LNG = "en"

// GetMessage method returns the message in the process-wide default language
// GetMessage 方法返回进程默认语言的消息
func (l lang) GetMessage() string {
	return l.GetMessageFor(GetGlobalDefaultLang())
}

// GetMessageFor returns the message in the given language without touching
// any shared state
// GetMessageFor 按传入语言返回消息，不读写任何共享状态
func (l lang) GetMessageFor(language string) string {
	if language == "" {
		language = FALLBACK_LNG
	}
	// Get language field
	// 获取语言字段
	val := reflect.ValueOf(l)
	field := val.FieldByName(language)
	// If the language field is valid and not empty, return the message in that language
	// 如果语言字段有效且非空，返回该语言的消息
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	// If the specified language is invalid, return the message of the fallback language
	// 如果指定语言无效，返回回退语言的消息
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", language)
}

// GetSupportedLanguages function returns all languages supported by the lang type
// GetSupportedLanguages 函数返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		languages = append(languages, field.Name)
	}
	return languages
}

// IsSupportedLang reports whether the lang type carries the given language
// IsSupportedLang 判断 lang 类型是否支持传入的语言
func IsSupportedLang(language string) bool {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			return true
		}
	}
	return false
}

// SetGlobalDefaultLang sets the process-wide default language
// 设置进程默认语言，仅用于启动阶段
func SetGlobalDefaultLang(language string) error {
	lngMu.Lock()
	defer lngMu.Unlock()

	if IsSupportedLang(language) {
		lng = language
		return nil
	}
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the process-wide default language
// 获取进程默认语言
func GetGlobalDefaultLang() string {
	lngMu.RLock()
	defer lngMu.RUnlock()
	return lng
}
