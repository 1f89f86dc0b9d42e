package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
)

func TestBuildSizeFilterMap(t *testing.T) {
	products := []model.Product{
		{Size: "710/70R42", Diameter: "42"},
		{Size: "520/85R42", Diameter: "42"},
		{Size: "710/70R42", Diameter: "42"}, // 重复，必须去重
		{Size: " 600/65R38 ", Diameter: " 38 "},
		{Size: "", Diameter: "30"},
		{Size: "480/80R30", Diameter: ""},
	}

	got := BuildSizeFilterMap(products)

	want := model.SizeFilterMap{
		"42": {"520/85R42", "710/70R42"},
		"38": {"600/65R38"},
	}
	assert.Equal(t, want, got)
}

// 每个带完整 直径+规格 的商品都必须出现在对应直径的索引里
func TestBuildSizeFilterMapCoversAll(t *testing.T) {
	products := []model.Product{
		{Size: "710/70R42", Diameter: "42"},
		{Size: "600/65R38", Diameter: "38"},
		{Size: "480/80R30", Diameter: "30"},
	}

	got := BuildSizeFilterMap(products)

	for _, p := range products {
		assert.Contains(t, got[p.Diameter], p.Size)
	}
}

func TestSortDiameters(t *testing.T) {
	got := SortDiameters([]string{"42", "30.5", "38", "9", "26"})
	assert.Equal(t, []string{"9", "26", "30.5", "38", "42"}, got)
}

func TestSortDiametersNonNumericFallback(t *testing.T) {
	got := SortDiameters([]string{"42", "невідомо", "9"})
	// 无法解析的值按字典序参与比较，顺序不固定但不能丢元素
	assert.Len(t, got, 3)
	assert.ElementsMatch(t, []string{"42", "невідомо", "9"}, got)
}

func TestSizeFilterLoadStatic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "size-filter-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"42":["710/70R42"],"38":["600/65R38"]}`), 0o644))
	svc := NewSizeFilterService(directus.NewClient("http://unused.invalid", "t"), path, zap.NewNop())

	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"710/70R42"}, got["42"])
	assert.Equal(t, []string{"600/65R38"}, got["38"])
}

// 静态产物缺失时回退在线构建，并带抓取上限
func TestSizeFilterLoadFallback(t *testing.T) {
	var captured string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []model.Product{
				{Size: "710/70R42", Diameter: "42"},
			},
			"meta": map[string]int{"total_count": 1},
		})
	}))
	defer srv.Close()

	missing := filepath.Join(t.TempDir(), "no-such-file.json")
	svc := NewSizeFilterService(directus.NewClient(srv.URL, "t"), missing, zap.NewNop())

	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1000", captured, "回退抓取必须限量")
	assert.Equal(t, []string{"710/70R42"}, got["42"])
}

func TestSizeFilterLoadCorruptStaticFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "size-filter-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"meta":{"total_count":0}}`))
	}))
	defer srv.Close()

	svc := NewSizeFilterService(directus.NewClient(srv.URL, "t"), path, zap.NewNop())
	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
