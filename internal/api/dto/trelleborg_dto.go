package dto

import "github.com/sezikua/agrotyres-shop/internal/model"

// TableResp 规范化后的技术参数表 HTML 片段
type TableResp struct {
	HTML string `json:"html"`
}

// CCalcResp 计算表响应
type CCalcResp struct {
	CCList []model.CCalcEntry `json:"cclist"`
	Meta   model.CCalcMeta    `json:"meta"`
}

// RecommendResp 压力推荐响应
// 无可用推荐（未选速度、表为空）时 recommendation 为 null，不是错误
type RecommendResp struct {
	Recommendation *model.Recommendation `json:"recommendation"`
}
