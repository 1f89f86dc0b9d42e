package dto

import "github.com/sezikua/agrotyres-shop/internal/model"

// ==================== 响应 DTO ====================

// Pagination 分页元数据
// totalItems = 0 时 totalPages 约定为 0，hasNext/hasPrev 均为 false
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ProductListResp 商品列表响应
type ProductListResp struct {
	Data       []model.Product `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// ProductsResp 不分页的商品集合响应（同规格商品查询）
type ProductsResp struct {
	Data []model.Product `json:"data"`
}

// ProductResp 单个商品响应
type ProductResp struct {
	Data *model.Product `json:"data"`
}

// SizeFilterResp 直径 -> 规格 级联筛选数据响应
type SizeFilterResp struct {
	Data model.SizeFilterMap `json:"data"`
}

// ErrorResp 统一错误响应，对外只暴露本地化文案
type ErrorResp struct {
	Error string `json:"error"`
}
