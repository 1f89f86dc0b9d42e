package config

import "testing"

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("DIRECTUS_URL", "")
	t.Setenv("DIRECTUS_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("缺少上游凭证时必须报错，不允许内置默认值")
	}

	t.Setenv("DIRECTUS_URL", "https://cms.example.com")
	if _, err := Load(); err == nil {
		t.Fatal("缺少令牌时必须报错")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DIRECTUS_URL", "https://cms.example.com")
	t.Setenv("DIRECTUS_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("默认端口错误: %q", cfg.ServerPort)
	}
	if cfg.TrelleborgDataDir != "data/trelleborg" {
		t.Fatalf("默认数据目录错误: %q", cfg.TrelleborgDataDir)
	}
	if cfg.SizeFilterPath != "public/size-filter-data.json" {
		t.Fatalf("默认索引路径错误: %q", cfg.SizeFilterPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DIRECTUS_URL", "https://cms.example.com")
	t.Setenv("DIRECTUS_TOKEN", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if cfg.ServerPort != "9090" || cfg.AppEnv != "production" {
		t.Fatalf("环境变量未生效: %+v", cfg)
	}
}
