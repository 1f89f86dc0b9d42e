package service

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sezikua/agrotyres-shop/internal/model"
)

// ErrNotFound 数据文件缺失或文件里没有对应的表
var ErrNotFound = errors.New("trelleborg: not found")

// ==================== TrelleborgService 厂商技术数据 ====================

// TrelleborgService 读取厂商按 SKU 落盘的静态数据并做本地化规范化
// 数据目录结构：sizes/{sku}.json、ccalculator_size/{sku}.json、core.json
// 文件由厂商侧生成，对本系统只读
type TrelleborgService struct {
	dataDir string
	log     *zap.Logger
}

// NewTrelleborgService 创建厂商数据服务
func NewTrelleborgService(dataDir string, log *zap.Logger) *TrelleborgService {
	return &TrelleborgService{dataDir: dataDir, log: log}
}

// ==================== 压力/载荷表规范化 ====================

// sizeFile sizes/{sku}.json 的结构
type sizeFile struct {
	Size *struct {
		HTML string `json:"html"`
	} `json:"size"`
}

// LoadSizeTable 读取指定 SKU 的压力/载荷表并规范化
// 文件缺失与文件里没有 html 都算 ErrNotFound，和上游故障区分开
func (s *TrelleborgService) LoadSizeTable(sku string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, "sizes", sku+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}

	var f sizeFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", err
	}
	if f.Size == nil || f.Size.HTML == "" {
		return "", ErrNotFound
	}

	return NormalizeTable(f.Size.HTML), nil
}

// 规范化用到的固定模式
var (
	brTagRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	nbspEntityRe  = regexp.MustCompile(`(?i)&nbsp;`)
	multiLineRe   = regexp.MustCompile(`\n{2,}`)
	multiBrRe     = regexp.MustCompile(`(?i)(<br\s*/?>\s*){2,}`)
	treadHeaderRe = regexp.MustCompile(`(?i)TREAD\s+PATTERN`)
	rimsHeaderRe  = regexp.MustCompile(`(?i)PERMITTED\s+RIMS`)
)

// NormalizeTable 翻译 + 分段 + 尾部清洗 + 表头双行，单趟线性管线
// 相同输入字节级确定；对自身输出再执行一遍为恒等（翻译规则不会二次命中，
// 表头替换插入的 <br> 不再满足 \s+ 间隔）
func NormalizeTable(html string) string {
	// 先整体翻译（表格 + 尾部）
	translated := applyTableRules(html)

	// 定位第一个闭合表格标记；没有表格时整体按尾部文本处理
	const closingTag = "</table>"
	idx := strings.Index(strings.ToLower(translated), closingTag)
	if idx == -1 {
		return normalizeTail(translated)
	}

	tablePart := translated[:idx+len(closingTag)]
	tail := translated[idx+len(closingTag):]

	// 表格内部不动缩进结构，只强制两个已知表头折成两行
	normalizedTable := treadHeaderRe.ReplaceAllString(tablePart, "TREAD<br>PATTERN")
	normalizedTable = rimsHeaderRe.ReplaceAllString(normalizedTable, "PERMITTED<br>RIMS")

	normalizedTail := ""
	if tail != "" {
		normalizedTail = normalizeTail(tail)
	}
	if normalizedTail == "" {
		return normalizedTable
	}
	return normalizedTable + "<br>" + normalizedTail
}

// normalizeTail 表格之后说明文字的空白规范化
func normalizeTail(text string) string {
	out := strings.ReplaceAll(text, "\r\n", "\n")
	out = brTagRe.ReplaceAllString(out, "\n")
	out = nbspEntityRe.ReplaceAllString(out, " ")
	out = strings.ReplaceAll(out, " ", " ")
	out = multiLineRe.ReplaceAllString(out, "\n")
	out = strings.TrimSpace(out)
	out = strings.ReplaceAll(out, "\n", "<br>")
	out = multiBrRe.ReplaceAllString(out, "<br>")
	return out
}

// ==================== 压力计算表 ====================

// ccalcFile ccalculator_size/{sku}.json 的结构
// 元数据字段名在源数据里不统一（RimWidth / "Rim Width" 等），先收原始 map 再归一
type ccalcFile struct {
	CCalculatorSize map[string]json.RawMessage `json:"ccalculator_size"`
}

// coreFile core.json：厂商全量尺寸清单
type coreFile struct {
	SizeList []struct {
		IDCode   string `json:"ID_code"`
		OD       string `json:"OD"`
		RC       string `json:"RC"`
		SRI      string `json:"SRI"`
		RimWidth string `json:"RIM_Width"`
	} `json:"size_list"`
}

// LoadCCalc 读取指定 SKU 的计算表并合并 core.json 中的尺寸元数据
func (s *TrelleborgService) LoadCCalc(sku string) (*model.CCalc, error) {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, "ccalculator_size", sku+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var f ccalcFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if f.CCalculatorSize == nil {
		return nil, ErrNotFound
	}

	out := &model.CCalc{Meta: metaFromRaw(f.CCalculatorSize)}
	if rawList, ok := f.CCalculatorSize["cclist"]; ok {
		if err := json.Unmarshal(rawList, &out.CCList); err != nil {
			return nil, err
		}
	}

	// core.json 的元数据优先级更高
	if coreMeta := s.loadCoreMeta(sku); coreMeta != nil {
		mergeMeta(&out.Meta, coreMeta)
	}
	return out, nil
}

// metaFromRaw 归一文件内的元数据键名
func metaFromRaw(raw map[string]json.RawMessage) model.CCalcMeta {
	str := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		var out string
		if err := json.Unmarshal(v, &out); err != nil {
			return ""
		}
		return out
	}

	meta := model.CCalcMeta{
		OD:  str("OD"),
		RC:  str("RC"),
		SRI: str("SRI"),
	}
	// 历史数据里带空格的键后写，优先级依源数据约定
	meta.RimWidth = str("RimWidth")
	if v := str("Rim Width"); v != "" {
		meta.RimWidth = v
	}
	meta.PermittedRims = str("PERMITTED RIMS")
	if v := str("PermittedRims"); v != "" {
		meta.PermittedRims = v
	}
	return meta
}

// loadCoreMeta core.json 缺失或无匹配项时静默降级，仅保留文件内的元数据
func (s *TrelleborgService) loadCoreMeta(sku string) *model.CCalcMeta {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, "core.json"))
	if err != nil {
		s.log.Warn("core.json 读取失败", zap.Error(err))
		return nil
	}

	var f coreFile
	if err := json.Unmarshal(raw, &f); err != nil {
		s.log.Warn("core.json 解析失败", zap.Error(err))
		return nil
	}

	for _, item := range f.SizeList {
		if item.IDCode == sku {
			return &model.CCalcMeta{
				OD:       item.OD,
				RC:       item.RC,
				SRI:      item.SRI,
				RimWidth: item.RimWidth,
			}
		}
	}
	return nil
}

// mergeMeta src 的非空字段覆盖 dst
func mergeMeta(dst *model.CCalcMeta, src *model.CCalcMeta) {
	if src.OD != "" {
		dst.OD = src.OD
	}
	if src.RC != "" {
		dst.RC = src.RC
	}
	if src.SRI != "" {
		dst.SRI = src.SRI
	}
	if src.RimWidth != "" {
		dst.RimWidth = src.RimWidth
	}
	if src.PermittedRims != "" {
		dst.PermittedRims = src.PermittedRims
	}
}

// ==================== 压力推荐 ====================

// Recommend 在指定速度下覆盖目标载荷的最小充气压力
// 未选速度、载荷无法解析或表为空时返回 nil（无推荐，不是错误）
// 规则：候选行按压力升序，优先取载荷精确相等的行，
// 其次取第一条载荷 >= 目标的行，都没有时兜底压力最高的一行
func Recommend(cclist []model.CCalcEntry, speed, load string) *model.Recommendation {
	if speed == "" || len(cclist) == 0 {
		return nil
	}
	target, ok := parseLoad(load)
	if !ok {
		return nil
	}

	type candidate struct {
		label    string
		pressure float64
		load     float64
	}
	candidates := make([]candidate, 0, len(cclist))
	for _, row := range cclist {
		if row.Speed != speed {
			continue
		}
		p, okP := parsePressure(row.Pressure)
		l, okL := parseLoad(row.Load)
		if !okP || !okL {
			// 无法解析的行剔除，不中断整个计算
			continue
		}
		candidates = append(candidates, candidate{label: row.Pressure, pressure: p, load: l})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].pressure < candidates[j].pressure
	})

	pick := candidates[len(candidates)-1]
	matched := false
	for _, c := range candidates {
		if c.load == target {
			pick = c
			matched = true
			break
		}
	}
	if !matched {
		for _, c := range candidates {
			if c.load >= target {
				pick = c
				break
			}
		}
	}

	return &model.Recommendation{
		Pressure:      pick.label,
		PressureValue: pick.pressure,
		LoadValue:     pick.load,
	}
}

// parsePressure 容忍十进制逗号："1,2" -> 1.2
func parsePressure(value string) (float64, bool) {
	return parseLeadingFloat(strings.ReplaceAll(value, ",", "."))
}

// parseLoad 去掉空白与千位分隔逗号："2 000" / "2,000" -> 2000
func parseLoad(value string) (float64, bool) {
	clean := strings.ReplaceAll(value, ",", "")
	clean = strings.Join(strings.Fields(clean), "")
	return parseLeadingFloat(clean)
}
