package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
)

// newStubCatalog 启动返回固定商品集的上游桩，并记录收到的查询参数
func newStubCatalog(t *testing.T, products []model.Product) (*CatalogService, *url.Values) {
	t.Helper()
	var captured url.Values
	if products == nil {
		products = []model.Product{}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		resp := map[string]interface{}{
			"data": products,
			"meta": map[string]int{"total_count": len(products)},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return NewCatalogService(directus.NewClient(srv.URL, "test-token"), zap.NewNop()), &captured
}

func TestQueryProductsSortOrder(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Шина Б", Warehouse: model.WarehouseOutOfStock},
		{ID: 2, ProductName: "Шина Г", Warehouse: model.WarehouseInStock},
		{ID: 3, ProductName: "Шина А", Warehouse: "Unknown state"},
		{ID: 4, ProductName: "Шина В", Warehouse: model.WarehouseOnOrder},
		{ID: 5, ProductName: "Шина А", Warehouse: model.WarehouseInStock},
	}
	svc, _ := newStubCatalog(t, products)

	items, _, err := svc.QueryProducts(context.Background(), ProductFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	wantIDs := []int{5, 2, 4, 1, 3}
	if len(items) != len(wantIDs) {
		t.Fatalf("结果数量不符: got %d, want %d", len(items), len(wantIDs))
	}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Fatalf("第 %d 位排序错误: got id=%d, want id=%d", i, items[i].ID, want)
		}
	}
}

// 分页必须作用在全局排好序的结果集上：逐页拼接应覆盖全集且无重复
func TestQueryProductsPaginationCoversAll(t *testing.T) {
	var products []model.Product
	for i := 1; i <= 7; i++ {
		products = append(products, model.Product{
			ID:          i,
			ProductName: fmt.Sprintf("Шина %02d", i),
			Warehouse:   model.WarehouseInStock,
		})
	}
	svc, _ := newStubCatalog(t, products)

	seen := map[int]bool{}
	for page := 1; page <= 3; page++ {
		items, pg, err := svc.QueryProducts(context.Background(), ProductFilter{}, page, 3)
		if err != nil {
			t.Fatalf("第 %d 页查询失败: %v", page, err)
		}
		if pg.TotalItems != 7 || pg.TotalPages != 3 {
			t.Fatalf("分页元数据错误: %+v", pg)
		}
		if pg.HasNext != (page < 3) || pg.HasPrev != (page > 1) {
			t.Fatalf("第 %d 页前后页标志错误: %+v", page, pg)
		}
		for _, p := range items {
			if seen[p.ID] {
				t.Fatalf("商品 id=%d 出现在多页", p.ID)
			}
			seen[p.ID] = true
		}
	}
	if len(seen) != 7 {
		t.Fatalf("逐页拼接未覆盖全集: got %d, want 7", len(seen))
	}
}

func TestQueryProductsEmptySet(t *testing.T) {
	svc, _ := newStubCatalog(t, nil)

	items, pg, err := svc.QueryProducts(context.Background(), ProductFilter{}, 1, 30)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("空集应返回空页: got %d", len(items))
	}
	if pg.TotalItems != 0 || pg.TotalPages != 0 || pg.HasNext || pg.HasPrev {
		t.Fatalf("空集分页元数据错误: %+v", pg)
	}
}

// 有货收割机轮胎场景：只带库存过滤的上游参数 + 全量拉取 + 本地分页
func TestQueryProductsInStockHarvester(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Шина В", Warehouse: model.WarehouseInStock, Segment: "Harvester"},
		{ID: 2, ProductName: "Шина А", Warehouse: model.WarehouseInStock, Segment: "Harvester"},
		{ID: 3, ProductName: "Шина Б", Warehouse: model.WarehouseInStock, Segment: "Harvester"},
	}
	svc, captured := newStubCatalog(t, products)

	f := ProductFilter{Segments: []string{"Harvester"}, Warehouse: model.WarehouseInStock}
	items, pg, err := svc.QueryProducts(context.Background(), f, 1, 2)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	if got := captured.Get("filter[warehouse][_eq]"); got != model.WarehouseInStock {
		t.Fatalf("未发送库存过滤参数: got %q", got)
	}
	if got := captured.Get("filter[Segment][_in]"); got != "Harvester" {
		t.Fatalf("未发送细分市场过滤参数: got %q", got)
	}
	if got := captured.Get("limit"); got != "-1" {
		t.Fatalf("目录查询必须全量拉取: limit=%q", got)
	}
	if got := captured.Get("meta"); got != "total_count" {
		t.Fatalf("未请求总数元数据: meta=%q", got)
	}

	if pg.TotalItems != 3 || pg.TotalPages != 2 || !pg.HasNext || pg.HasPrev {
		t.Fatalf("分页元数据错误: %+v", pg)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].ID != 3 {
		t.Fatalf("第一页内容错误: %+v", items)
	}
}

func TestQueryProductsWarehouseAll(t *testing.T) {
	svc, captured := newStubCatalog(t, nil)

	_, _, err := svc.QueryProducts(context.Background(), ProductFilter{Warehouse: "all"}, 1, 30)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if captured.Has("filter[warehouse][_eq]") {
		t.Fatalf("warehouse=all 不应发送库存过滤参数: %v", *captured)
	}
}

func TestQueryProductsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	svc := NewCatalogService(directus.NewClient(srv.URL, "test-token"), zap.NewNop())

	_, _, err := svc.QueryProducts(context.Background(), ProductFilter{}, 1, 30)
	if err == nil {
		t.Fatal("上游 500 应返回错误")
	}
}

func TestProductByIDNotFound(t *testing.T) {
	svc, captured := newStubCatalog(t, nil)

	p, err := svc.ProductByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if p != nil {
		t.Fatalf("不存在的商品应返回 nil: %+v", p)
	}
	if got := captured.Get("filter[id][_eq]"); got != "42" {
		t.Fatalf("未按主键过滤: got %q", got)
	}
}

func TestProductBySlug(t *testing.T) {
	svc, captured := newStubCatalog(t, []model.Product{
		{ID: 7, ProductName: "Шина", Slug: "shyna-520-85r42"},
	})

	p, err := svc.ProductBySlug(context.Background(), "shyna-520-85r42")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if p == nil || p.ID != 7 {
		t.Fatalf("slug 查询结果错误: %+v", p)
	}
	if got := captured.Get("filter[slug][_eq]"); got != "shyna-520-85r42" {
		t.Fatalf("未按 slug 过滤: got %q", got)
	}
}
