package model

// ==================== 商品模型 ====================

// Product Directus 中 Product 集合的一条记录
// 目录数据对本系统只读：按请求从上游拉取，不做本地持久化
// 上游返回的未知字段在边界处直接丢弃，不透传
type Product struct {
	ID             int     `json:"id"`
	SKU            string  `json:"sku"`
	ProductName    string  `json:"product_name"`
	Model          string  `json:"model"`
	Size           string  `json:"size"`
	RegularPrice   string  `json:"regular_price"`
	DiscountPrice  *string `json:"discount_price"`
	Diameter       string  `json:"diameter"`
	ProductImage   *string `json:"product_image"`
	Description    *string `json:"description"`
	Specifications *string `json:"specifications"`
	Category       string  `json:"Category"`
	Segment        string  `json:"Segment"`
	Warehouse      string  `json:"warehouse"`
	Slug           string  `json:"slug,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	OnTheWay       bool    `json:"on_the_way,omitempty"`
}

// 库存状态固定枚举（上游 warehouse 字段的取值，大小写与上游一致）
const (
	WarehouseInStock    = "In stock"
	WarehouseOnOrder    = "On order"
	WarehouseOutOfStock = "out of stock"
)

// warehouseRank 排序权重：有货 -> 在途 -> 无货 -> 其他
var warehouseRank = map[string]int{
	WarehouseInStock:    1,
	WarehouseOnOrder:    2,
	WarehouseOutOfStock: 3,
}

// WarehouseRank 返回库存状态的排序权重，未知状态固定排最后
func WarehouseRank(warehouse string) int {
	if rank, ok := warehouseRank[warehouse]; ok {
		return rank
	}
	return 4
}
