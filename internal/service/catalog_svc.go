package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sezikua/agrotyres-shop/internal/api/dto"
	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
	"github.com/sezikua/agrotyres-shop/pkg/utils"
)

// 原始目录响应的重新验证窗口
const catalogCacheTTL = 5 * time.Minute

// 分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 30
)

// ==================== CatalogService 目录查询服务 ====================

// CatalogService 目录查询管线：过滤 -> 全量拉取 -> 本地排序 -> 本地分页
// 上游不支持 可用性+名称 的组合排序，而可用性排序必须跨整个过滤结果集全局成立，
// 因此有意全量拉取后本地处理，用效率换正确性
type CatalogService struct {
	client *directus.Client
	log    *zap.Logger
}

// NewCatalogService 创建目录查询服务
func NewCatalogService(client *directus.Client, log *zap.Logger) *CatalogService {
	return &CatalogService{client: client, log: log}
}

// ProductFilter 用户侧过滤条件
type ProductFilter struct {
	Category   string   // 单分类（旧入口向后兼容）
	Categories []string // 多分类
	Segments   []string
	Search     string
	MinPrice   string
	MaxPrice   string
	Warehouse  string // "all" 等同于不过滤

	// NameSearchOnly /filtered 入口的搜索语义：仅按商品名做 _icontains
	NameSearchOnly bool
}

// QueryProducts 按条件查询并返回排序分页后的商品页
func (s *CatalogService) QueryProducts(ctx context.Context, f ProductFilter, page, limit int) ([]model.Product, dto.Pagination, error) {
	all, err := s.fetchAllCached(ctx, s.buildQuery(f))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	sortProducts(all)
	items, pg := paginate(all, page, limit)
	return items, pg, nil
}

// ProductsBySegment 按细分市场查询
func (s *CatalogService) ProductsBySegment(ctx context.Context, segment string, page, limit int) ([]model.Product, dto.Pagination, error) {
	all, err := s.fetchAllCached(ctx, directus.NewQuery().SegmentEq(segment))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	sortProducts(all)
	items, pg := paginate(all, page, limit)
	return items, pg, nil
}

// ProductsBySize 按规格精确查询
func (s *CatalogService) ProductsBySize(ctx context.Context, size string, page, limit int) ([]model.Product, dto.Pagination, error) {
	all, err := s.fetchAllCached(ctx, directus.NewQuery().SizeEq(size))
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	sortProducts(all)
	items, pg := paginate(all, page, limit)
	return items, pg, nil
}

// SimilarBySize 同规格商品全集，不分页
// 当前商品自身的剔除由调用方完成，不属于查询条件
func (s *CatalogService) SimilarBySize(ctx context.Context, size string) ([]model.Product, error) {
	all, err := s.fetchAllCached(ctx, directus.NewQuery().SizeEq(size))
	if err != nil {
		return nil, err
	}
	sortProducts(all)
	return all, nil
}

// ProductByID 按主键取单个商品，不存在时返回 nil
func (s *CatalogService) ProductByID(ctx context.Context, id int) (*model.Product, error) {
	all, err := s.client.FetchProducts(ctx, directus.NewQuery().IDEq(id))
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// ProductBySlug 按 slug 取单个商品，不存在时返回 nil
func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	all, err := s.client.FetchProducts(ctx, directus.NewQuery().SlugEq(slug))
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// ==================== 内部实现 ====================

// buildQuery 过滤条件 -> 上游查询参数
func (s *CatalogService) buildQuery(f ProductFilter) *directus.Query {
	q := directus.NewQuery()
	if f.Category != "" {
		q.CategoryEq(f.Category)
	}
	if len(f.Categories) > 0 {
		q.CategoryIn(f.Categories)
	}
	if len(f.Segments) > 0 {
		q.SegmentIn(f.Segments)
	}
	if f.MinPrice != "" {
		q.PriceGte(f.MinPrice)
	}
	if f.MaxPrice != "" {
		q.PriceLte(f.MaxPrice)
	}
	if f.Warehouse != "" && f.Warehouse != "all" {
		q.WarehouseEq(f.Warehouse)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		if f.NameSearchOnly {
			q.SearchName(search)
		} else {
			q.SearchAll(search)
		}
	}
	return q
}

// fetchAllCached 带 5 分钟重新验证窗口的全量拉取
// 缓存键为 上游地址+规范化查询串；命中后返回副本，排序不会污染缓存
func (s *CatalogService) fetchAllCached(ctx context.Context, q *directus.Query) ([]model.Product, error) {
	key := s.client.BaseURL() + "/items/Product?" + q.Encode()
	if cached, ok := utils.GetCache(key); ok {
		if products, ok := cached.([]model.Product); ok {
			return append([]model.Product(nil), products...), nil
		}
	}

	products, err := s.client.FetchProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	utils.SetCache(key, products, catalogCacheTTL)
	return append([]model.Product(nil), products...), nil
}

// sortProducts 可用性优先、乌克兰语名称次之的稳定排序
// 权重相同且名称相同的记录保持原有相对顺序（无第三排序键）
func sortProducts(products []model.Product) {
	col := collate.New(language.Ukrainian)
	sort.SliceStable(products, func(i, j int) bool {
		ri, rj := model.WarehouseRank(products[i].Warehouse), model.WarehouseRank(products[j].Warehouse)
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(products[i].ProductName, products[j].ProductName) < 0
	})
}

// paginate 排序后的本地分页；page 从 1 开始，越界收敛到空页
func paginate(products []model.Product, page, limit int) ([]model.Product, dto.Pagination) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(products)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], dto.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}
