package service

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sezikua/agrotyres-shop/internal/model"
	"github.com/sezikua/agrotyres-shop/pkg/directus"
)

// 回退模式的抓取上限
// 静态产物缺失时索引基于目录抽样而不是真正的全集，精度退化是已知取舍，
// 接口层会记录告警而不是静默吞掉
const sizeFilterFallbackLimit = 1000

// ==================== SizeFilterService 规格筛选索引 ====================

// SizeFilterService 直径->规格 索引：优先读离线批处理产物，缺失时在线回退构建
type SizeFilterService struct {
	client     *directus.Client
	staticPath string
	log        *zap.Logger
}

// NewSizeFilterService 创建规格筛选索引服务
func NewSizeFilterService(client *directus.Client, staticPath string, log *zap.Logger) *SizeFilterService {
	return &SizeFilterService{client: client, staticPath: staticPath, log: log}
}

// Load 读取索引；静态产物缺失或损坏时回退为在线抽样构建
func (s *SizeFilterService) Load(ctx context.Context) (model.SizeFilterMap, error) {
	m, err := s.loadStatic()
	if err == nil {
		return m, nil
	}

	s.log.Warn("规格索引静态产物不可用，回退在线构建",
		zap.String("path", s.staticPath),
		zap.Int("fallback_limit", sizeFilterFallbackLimit),
		zap.Error(err))

	products, err := s.client.FetchProducts(ctx, directus.NewQuery().
		Fields("size,diameter").
		Limit(sizeFilterFallbackLimit))
	if err != nil {
		return nil, err
	}
	return BuildSizeFilterMap(products), nil
}

// loadStatic 读取离线产物文件
func (s *SizeFilterService) loadStatic() (model.SizeFilterMap, error) {
	raw, err := os.ReadFile(s.staticPath)
	if err != nil {
		return nil, err
	}
	var m model.SizeFilterMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ==================== 索引构建 ====================

// BuildSizeFilterMap 从商品列表构建 直径->规格 索引
// 直径或规格为空的记录跳过；规格按集合语义去重，再按乌克兰语排序
func BuildSizeFilterMap(products []model.Product) model.SizeFilterMap {
	seen := make(map[string]map[string]struct{})
	for _, p := range products {
		diameter := strings.TrimSpace(p.Diameter)
		size := strings.TrimSpace(p.Size)
		if diameter == "" || size == "" {
			continue
		}
		if seen[diameter] == nil {
			seen[diameter] = make(map[string]struct{})
		}
		seen[diameter][size] = struct{}{}
	}

	col := collate.New(language.Ukrainian)
	out := make(model.SizeFilterMap, len(seen))
	for diameter, sizes := range seen {
		list := make([]string, 0, len(sizes))
		for size := range sizes {
			list = append(list, size)
		}
		sort.SliceStable(list, func(i, j int) bool {
			return col.CompareString(list[i], list[j]) < 0
		})
		out[diameter] = list
	}
	return out
}

// SortDiameters 直径均可解析为数字时按数值升序，否则退回乌克兰语排序
func SortDiameters(values []string) []string {
	col := collate.New(language.Ukrainian)
	out := append([]string(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		a, okA := parseLeadingFloat(out[i])
		b, okB := parseLeadingFloat(out[j])
		if !okA || !okB {
			return col.CompareString(out[i], out[j]) < 0
		}
		return a < b
	})
	return out
}
