package model

// ==================== Trelleborg 计算表模型 ====================

// CCalcEntry 压力计算表中的一行 (压力/速度/载荷)
// 三个字段均保留上游的原始字符串形式，数值解析在推荐算法内完成
type CCalcEntry struct {
	Pressure string `json:"pressure"`
	Speed    string `json:"speed"`
	Load     string `json:"load"`
}

// CCalcMeta 计算表的尺寸元数据
type CCalcMeta struct {
	OD            string `json:"OD,omitempty"`
	RC            string `json:"RC,omitempty"`
	SRI           string `json:"SRI,omitempty"`
	RimWidth      string `json:"RimWidth,omitempty"`
	PermittedRims string `json:"PermittedRims,omitempty"`
}

// CCalc 单个 SKU 的完整计算表
type CCalc struct {
	CCList []CCalcEntry `json:"cclist"`
	Meta   CCalcMeta    `json:"meta"`
}

// Recommendation 压力推荐结果
type Recommendation struct {
	// Pressure 原始压力标签（如 "1,2"），直接用于展示
	Pressure      string  `json:"pressure"`
	PressureValue float64 `json:"pressureValue"`
	// LoadValue 该压力可承载的载荷（kg）
	LoadValue float64 `json:"loadValue"`
}
