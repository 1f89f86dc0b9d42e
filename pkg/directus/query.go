package directus

import (
	"net/url"
	"strconv"
	"strings"
)

// ==================== 查询构造器 ====================

// Query Directus items 接口的查询参数构造器
// 只覆盖本系统用到的过滤能力：等值、集合、价格区间、contains 文本匹配
type Query struct {
	vals url.Values
}

// NewQuery 创建空查询
func NewQuery() *Query {
	return &Query{vals: url.Values{}}
}

// CategoryEq 单分类过滤（旧入口的向后兼容形式）
func (q *Query) CategoryEq(category string) *Query {
	q.vals.Set("filter[Category][_eq]", category)
	return q
}

// CategoryIn 多分类过滤，逗号列表
func (q *Query) CategoryIn(categories []string) *Query {
	q.vals.Set("filter[Category][_in]", joinTrimmed(categories))
	return q
}

// SegmentEq 单细分市场过滤
func (q *Query) SegmentEq(segment string) *Query {
	q.vals.Set("filter[Segment][_eq]", segment)
	return q
}

// SegmentIn 多细分市场过滤
func (q *Query) SegmentIn(segments []string) *Query {
	q.vals.Set("filter[Segment][_in]", joinTrimmed(segments))
	return q
}

// SizeEq 按规格精确匹配
func (q *Query) SizeEq(size string) *Query {
	q.vals.Set("filter[size][_eq]", size)
	return q
}

// IDEq 按主键精确匹配
func (q *Query) IDEq(id int) *Query {
	q.vals.Set("filter[id][_eq]", strconv.Itoa(id))
	return q
}

// SlugEq 按 slug 精确匹配
func (q *Query) SlugEq(slug string) *Query {
	q.vals.Set("filter[slug][_eq]", slug)
	return q
}

// PriceGte 价格下限（上游以字符串存价格，原样传递）
func (q *Query) PriceGte(price string) *Query {
	q.vals.Set("filter[regular_price][_gte]", price)
	return q
}

// PriceLte 价格上限
func (q *Query) PriceLte(price string) *Query {
	q.vals.Set("filter[regular_price][_lte]", price)
	return q
}

// WarehouseEq 按库存状态过滤
func (q *Query) WarehouseEq(warehouse string) *Query {
	q.vals.Set("filter[warehouse][_eq]", warehouse)
	return q
}

// SearchAll 名称/型号/规格/SKU 四字段 OR 匹配
func (q *Query) SearchAll(term string) *Query {
	q.vals.Set("filter[_or][0][product_name][_contains]", term)
	q.vals.Set("filter[_or][1][model][_contains]", term)
	q.vals.Set("filter[_or][2][size][_contains]", term)
	q.vals.Set("filter[_or][3][sku][_contains]", term)
	return q
}

// SearchName 仅按商品名做大小写不敏感匹配
func (q *Query) SearchName(term string) *Query {
	q.vals.Set("filter[product_name][_icontains]", term)
	return q
}

// Fields 限定返回字段，减小全量拉取的载荷
func (q *Query) Fields(fields string) *Query {
	q.vals.Set("fields", fields)
	return q
}

// Limit 行数上限；-1 表示不分页取全量
func (q *Query) Limit(limit int) *Query {
	q.vals.Set("limit", strconv.Itoa(limit))
	return q
}

// Offset 偏移量，仅配合有限 Limit 的批量拉取使用
func (q *Query) Offset(offset int) *Query {
	q.vals.Set("offset", strconv.Itoa(offset))
	return q
}

// Values 输出最终查询参数
// 默认 limit=-1：上游缺少 可用性+名称 的组合排序能力，
// 排序必须在完整结果集上本地完成，所以列表查询一律全量拉取
func (q *Query) Values() url.Values {
	out := url.Values{}
	for k, vs := range q.vals {
		out[k] = append([]string(nil), vs...)
	}
	if out.Get("limit") == "" {
		out.Set("limit", "-1")
	}
	out.Set("meta", "total_count")
	return out
}

// Encode 规范化查询串，也用作响应缓存键的一部分
func (q *Query) Encode() string {
	return q.Values().Encode()
}

func joinTrimmed(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ",")
}
