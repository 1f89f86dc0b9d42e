package service

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingFloatRe 字符串开头的十进制数
var leadingFloatRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// parseLeadingFloat 解析字符串的前缀数字
// 对齐展示层宽松的数值解析：允许尾部残留字符（如 `23.1"`），
// 完全没有数字前缀时解析失败
func parseLeadingFloat(value string) (float64, bool) {
	m := leadingFloatRe.FindString(strings.TrimSpace(value))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
