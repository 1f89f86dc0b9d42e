package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sezikua/agrotyres-shop/internal/model"
)

// ==================== Directus 客户端 ====================

// 上游错误哨兵，controller 层据此映射状态码
var (
	// ErrUpstream 网络失败或非 2xx 响应；不重试，直接上抛
	ErrUpstream = errors.New("directus: upstream request failed")
	// ErrBadPayload data 字段缺失或不是数组
	ErrBadPayload = errors.New("directus: malformed payload")
)

// Client Directus items 接口客户端，全系统统一的上游请求入口
type Client struct {
	http *resty.Client
}

// NewClient 创建客户端
// baseURL 与 token 必须由配置显式提供，代码中不允许内置默认凭证
func NewClient(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20*time.Second).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token)
	return &Client{http: c}
}

// BaseURL 返回上游地址，缓存键需要它区分不同实例
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// FetchProducts 按查询条件拉取商品（limit=-1 时为全量）
func (c *Client) FetchProducts(ctx context.Context, q *Query) ([]model.Product, error) {
	var res ItemsResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q.Values()).
		SetResult(&res).
		Get("/items/Product")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	return decodeProducts(res.Data)
}

// decodeProducts 校验 data 必须是数组并解码为强类型记录
// 上游偶发返回对象或 null，这类响应按数据格式错误处理而不是静默当空列表
func decodeProducts(raw json.RawMessage) ([]model.Product, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrBadPayload
	}
	var products []model.Product
	if err := json.Unmarshal(trimmed, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return products, nil
}
