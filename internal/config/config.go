package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ==================== 应用配置 ====================

// Config 应用配置
// Directus 地址与令牌必须显式提供：目录后端的凭证不允许以默认值形式存在于代码里
type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	DirectusURL   string
	DirectusToken string

	// TrelleborgDataDir 厂商静态数据根目录（sizes/、ccalculator_size/、core.json）
	TrelleborgDataDir string
	// SizeFilterPath 离线批处理产出的规格索引文件
	SizeFilterPath string
}

// Load 从环境变量读取配置
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TRELLEBORG_DATA_DIR", "data/trelleborg")
	v.SetDefault("SIZE_FILTER_PATH", "public/size-filter-data.json")

	cfg := &Config{
		ServerPort:        v.GetString("SERVER_PORT"),
		AppEnv:            v.GetString("APP_ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		DirectusURL:       v.GetString("DIRECTUS_URL"),
		DirectusToken:     v.GetString("DIRECTUS_TOKEN"),
		TrelleborgDataDir: v.GetString("TRELLEBORG_DATA_DIR"),
		SizeFilterPath:    v.GetString("SIZE_FILTER_PATH"),
	}

	if cfg.DirectusURL == "" {
		return nil, fmt.Errorf("缺少必需配置 DIRECTUS_URL")
	}
	if cfg.DirectusToken == "" {
		return nil, fmt.Errorf("缺少必需配置 DIRECTUS_TOKEN")
	}

	return cfg, nil
}
