package model

// SizeFilterMap 直径 -> 该直径下出现过的规格列表（已按乌克兰语排序）
// 由离线批处理从全量目录构建，运行时作为级联筛选的只读缓存
type SizeFilterMap map[string][]string
