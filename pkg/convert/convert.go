// Package convert 结构体转换辅助
package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
)

// StructAssign 把 src 与 dst 的同名字段值复制到 dst 中
// dst 目标结构体指针，src 源结构体指针
func StructAssign(src any, dst any) any {
	_ = copier.Copy(dst, src)
	return dst
}

// StructToMap 结构体转 map，途径 JSON 序列化
// param 需要被转的数据，data 转换完成后的数据，需要用引用传进来
func StructToMap(param any, data map[string]interface{}) error {
	str, err := sonic.Marshal(param)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(str, &data)
}
