package utils

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	SetCache("k1", "v1", time.Minute)
	defer DeleteCache("k1")

	v, ok := GetCache("k1")
	if !ok {
		t.Fatal("缓存未命中")
	}
	if v.(string) != "v1" {
		t.Fatalf("缓存值错误: %v", v)
	}
}

func TestCacheExpiration(t *testing.T) {
	SetCache("k2", "v2", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := GetCache("k2"); ok {
		t.Fatal("过期条目不应命中")
	}
}

func TestCacheDelete(t *testing.T) {
	SetCache("k3", "v3", time.Minute)
	DeleteCache("k3")

	if _, ok := GetCache("k3"); ok {
		t.Fatal("删除后不应命中")
	}
}

func TestCacheOverwrite(t *testing.T) {
	SetCache("k4", "old", time.Minute)
	SetCache("k4", "new", time.Minute)
	defer DeleteCache("k4")

	v, ok := GetCache("k4")
	if !ok || v.(string) != "new" {
		t.Fatalf("覆盖写失败: %v", v)
	}
}
