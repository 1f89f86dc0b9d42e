package directus

import "encoding/json"

// ==========================================
// DTO: 接收 Directus API 返回的原始 JSON
// ==========================================

// ItemsResp items 接口通用响应
// data 先以 RawMessage 接收，由客户端校验其必须是数组后再解码为强类型记录
type ItemsResp struct {
	Data json.RawMessage `json:"data"`
	Meta *MetaResp       `json:"meta,omitempty"`
}

// MetaResp meta=total_count 时返回的统计信息
type MetaResp struct {
	TotalCount int `json:"total_count"`
}

// ErrorResp Directus 通用错误响应
type ErrorResp struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
