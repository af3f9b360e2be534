package util

import (
	"github.com/denisbrodbeck/machineid"
)

// GetMachineID 获取机器唯一标识，失败时回退为固定值
// 用于将 Token 签名密钥与部署机器绑定
func GetMachineID() string {
	id, err := machineid.ID()
	if err != nil {
		return "unknown-machine"
	}
	return id
}
