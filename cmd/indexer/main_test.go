package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
)

func TestMarshalOrdered(t *testing.T) {
	m := model.SizeFilterMap{
		"42": {"710/70R42"},
		"9":  {"6.00-9"},
		"38": {"600/65R38"},
	}

	data, err := marshalOrdered(m)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	// 键按直径数值序输出，产物可复现
	s := string(data)
	i9 := strings.Index(s, `"9"`)
	i38 := strings.Index(s, `"38"`)
	i42 := strings.Index(s, `"42"`)
	if i9 == -1 || i38 == -1 || i42 == -1 || !(i9 < i38 && i38 < i42) {
		t.Fatalf("键序错误:\n%s", s)
	}

	var back model.SizeFilterMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("产物必须是合法 JSON: %v", err)
	}
	if len(back) != 3 || back["42"][0] != "710/70R42" {
		t.Fatalf("产物内容错误: %v", back)
	}
}

func TestBuildIndexPagedFetch(t *testing.T) {
	// 上游共 pageSize+1 条记录，必须走两次分页请求
	total := pageSize + 1
	var offsets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		offsets = append(offsets, r.URL.Query().Get("offset"))

		var page []model.Product
		for i := offset; i < total && i < offset+pageSize; i++ {
			page = append(page, model.Product{
				Size:     fmt.Sprintf("710/70R%d", i%3+30),
				Diameter: strconv.Itoa(i%3 + 30),
			})
		}
		if page == nil {
			page = []model.Product{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": page,
			"meta": map[string]int{"total_count": total},
		})
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "out", "size-filter-data.json")
	client := directus.NewClient(srv.URL, "t")
	if err := buildIndex(context.Background(), client, out, zap.NewNop()); err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	if len(offsets) != 2 || offsets[0] != "0" || offsets[1] != strconv.Itoa(pageSize) {
		t.Fatalf("分页请求序列错误: %v", offsets)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("产物未写入: %v", err)
	}
	var m model.SizeFilterMap
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("产物解析失败: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("索引内容错误: %v", m)
	}
}
