package config

import (
	"fmt"
	"os"

	"github.com/gonewx/folio/pkg/embedded"
)

// readConfigFile 读取配置文件
//
// 优先从嵌入资源读取（"data/" 前缀且 embedded 已初始化），
// 否则回退到磁盘文件，便于用 -tuning / -projects 覆盖内置配置。
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
