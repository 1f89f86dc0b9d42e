package service

import "regexp"

// ==================== 翻译规则表 ====================

// tableRule 固定翻译规则：命中英文技术/法务句式时替换为乌克兰语文案
type tableRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// tableRules 按固定顺序应用
// 规则集的不变式：替换后的文本不会再命中任何规则（含自身），
// 保证整条管线对自身输出幂等；管线不做二次校验，新规则入表前需人工核对
var tableRules = []tableRule{
	{
		regexp.MustCompile(`(?i)\(\*\)\s*=\s*10\s*LT\s*at\s*0\.4\s*bar\s*only\s*dual/triple\s*use`),
		`(*) = 10 LT при 0,4 bar лише для здвоєних/строєних коліс`,
	},
	{
		regexp.MustCompile(`(?i)\(\*\)\s*=\s*10\s*LT\s*at\s*0,4\s*bar\s*only\s*dual/triple\s*use`),
		`(*) = 10 LT при 0,4 bar лише для здвоєних/строєних коліс`,
	},
	{
		regexp.MustCompile(`(?i)\(\*\*\)\s*=\s*10\s*HT\s*at\s*0\.6\s*bar\s*only\s*dual/triple\s*use`),
		`(**) = 10 HT при 0,6 bar лише для здвоєних/строєних коліс`,
	},
	{
		regexp.MustCompile(`(?i)\(\*\*\)\s*=\s*10\s*HT\s*at\s*0,6\s*bar\s*only\s*dual/triple\s*use`),
		`(**) = 10 HT при 0,6 bar лише для здвоєних/строєних коліс`,
	},
	{
		regexp.MustCompile(`(?i)SW\s*[-–]\s*on\s*the\s*nominal\s*rim\.?\s*\(not\s*riferred\s*to\s*the\s*PERMITTED\s*RIMS\)`),
		`SW — на номінальному диску (не стосується дозволених дисків)`,
	},
	{
		regexp.MustCompile(`(?i)SW\s*[-–]\s*on\s*the\s*nominal\s*rim\.?\s*\(not\s*referred\s*to\s*the\s*PERMITTED\s*RIMS\)`),
		`SW — на номінальному диску (не стосується дозволених дисків)`,
	},
	{
		regexp.MustCompile(`(?i)SW\s*=\s*On\s*the\s*nominal\s*RIM\.?\s*\(Not\s*referred?\s*to\s*the\s*PERMITTED\s*RIMS\)`),
		`SW = на номінальному диску (не стосується дозволених дисків)`,
	},
	{
		regexp.MustCompile(`(?i)\bS\s*=\s*Single\s*fitment\.?`),
		`S = одиночне встановлення.`,
	},
	{
		regexp.MustCompile(`(?i)SRI\s*[-–]\s*Speed\s*Radius\s*Index\s*[-–]\s*value\s*to\s*be\s*used\s*for\s*the\s*calculation\s*of\s*the\s*theoretical\s*tractor\s*speed\s*during\s*European\s*Union\s*homologation\s*and\s*for\s*the\s*interchangebility\s*of\s*different\s*tyre\s*sizes\.?`),
		`SRI — індекс радіуса швидкості; значення для розрахунку теоретичної швидкості трактора під час сертифікації в ЄС та для взаємозамінності різних типорозмірів шин.`,
	},
	{
		regexp.MustCompile(`(?i)SRI\s*[-–]\s*Speed\s*Radius\s*Index\s*[-–]\s*value\s*to\s*be\s*used\s*for\s*the\s*calculation\s*of\s*the\s*theoretical\s*tractor\s*speed\s*during\s*European\s*Union\s*homologation\s*and\s*for\s*the\s*interchangeability\s*of\s*different\s*tyre\s*sizes\.?`),
		`SRI — індекс радіуса швидкості; значення для розрахунку теоретичної швидкості трактора під час сертифікації в ЄС та для взаємозамінності різних типорозмірів шин.`,
	},
	{
		regexp.MustCompile(`(?i)SRI\s*=\s*Speed\s*Radius\s*Index\s*-\s*value\s*to\s*be\s*used\s*for\s*calculation\s*of\s*the\s*theoretical\s*tractor\s*speed\s*during\s*European\s*Union\s*homologation\s*and\s*for\s*the\s*interchangeability\s*of\s*different\s*tyre\s*sizes\.?`),
		`SRI — індекс радіуса швидкості; значення для розрахунку теоретичної швидкості трактора під час сертифікації в ЄС та для взаємозамінності різних типорозмірів шин.`,
	},
	{
		regexp.MustCompile(`(?i)For\s*intensive\s*road\s*transport\s*above\s*40\s*km/h\s*the\s*pressure\s*could\s*be\s*increased\s*by\s*0\.4\s*bar\.?`),
		`Для інтенсивних дорожніх перевезень понад 40 км/год тиск можна підвищити на 0,4 bar.`,
	},
	{
		regexp.MustCompile(`(?i)70/65/50/40/30\s*=\s*On\s*road\s*transport\s*at\s*70/65/50/40/30\s*Km/h\.\s*For\s*intensive\s*road\s*transport\s*at\s*40,\s*50,\s*65\s*and\s*70\s*Km/h\s*the\s*pressure\s*should\s*be\s*increased\s*by\s*0,4\s*bar\.?`),
		`70/65/50/40/30 = для руху дорогами зі швидкістю 70/65/50/40/30 км/год. Для інтенсивних перевезень на 40, 50, 65 та 70 км/год тиск слід збільшити на 0,4 bar.`,
	},
	{
		regexp.MustCompile(`(?i)All\s*load\s*value\s*for\s*ground\s*slopes\s*up\s*to\s*20%\s*\(above\s*20%\s*consult\s*TWS\)`),
		`Усі значення навантаження наведені для ухилів до 20%; при ухилах понад 20% проконсультуйтеся з TWS.`,
	},
	{
		regexp.MustCompile(`(?i)All\s*load\s*values?\s*for\s*ground\s*slopes\s*up\s*to\s*20%\s*\(above\s*20%\s*consult\s*TWS\)`),
		`Усі значення навантаження наведені для ухилів до 20%; при ухилах понад 20% проконсультуйтеся з TWS.`,
	},
	{
		regexp.MustCompile(`(?i)10\s*LT\s*=\s*Maximum\s*Speed\s*10\s*Km/h\.\s*Surface\s*treatment\s*with\s*low\s*torque\s*value\.?`),
		`10 LT = максимальна швидкість 10 км/год. Поверхнева обробка з низьким крутним моментом.`,
	},
	{
		regexp.MustCompile(`(?i)10\s*HT\s*=\s*Maximum\s*Speed\s*10\s*Km/h\.\s*Field\s*application\s*with\s*high\s*torque\s*value\.?`),
		`10 HT = максимальна швидкість 10 км/год. Польові роботи з високим крутним моментом.`,
	},
	{
		regexp.MustCompile(`(?i)H\s*\(\*\)\s*=\s*Maximum\s*speed\s*10\s*Km/h\.\s*Harvesting\s*machines\s*in\s*cyclic\s*loading\s*service\s*and\s*farm\s*to\s*field\s*transit\.?`),
		`H (*) = максимальна швидкість 10 км/год. Зернозбиральні машини при циклічних навантаженнях та переїздах “господарство–поле”.`,
	},
	{
		regexp.MustCompile(`(?i)For\s*dual\s*mounting\s*use\s*the\s*pressure\s*correspondent\s*to\s*the\s*load\s*per\s*each\s*wheel\s*divided\s*by\s*0\.88\.?`),
		`Для здвоєних коліс використовуйте тиск, що відповідає навантаженню на одне колесо, поділеному на 0,88.`,
	},
	{
		regexp.MustCompile(`(?i)IMPORTANT\s*[-–]\s*The\s*inflation\s*pressure\s*is\s*estabilished\s*considering\s*the\s*max\s*load\s*for\s*each\s*tyre\.?`),
		`ВАЖЛИВО: тиск накачування встановлюється з урахуванням максимального навантаження для кожної шини.`,
	},
	{
		regexp.MustCompile(`(?i)IMPORTANT:\s*The\s*inflation\s*pressure\s*is\s*established\s*considering\s*the\s*application\s*and\s*the\s*load\s*for\s*each\s*tyre\.?`),
		`ВАЖЛИВО: тиск накачування встановлюється з урахуванням застосування та навантаження для кожної шини.`,
	},
	{
		regexp.MustCompile(`(?i)IMPORTANT\s*[-–]\s*The\s*inflation\s*pressure\s*is\s*established\s*considering\s*the\s*application\s*and\s*the\s*load\s*for\s*each\s*tyre\.?`),
		`ВАЖЛИВО: тиск накачування встановлюється з урахуванням застосування та навантаження для кожної шини.`,
	},
}

// applyTableRules 对整段输入按固定顺序应用全部翻译规则
func applyTableRules(text string) string {
	out := text
	for _, r := range tableRules {
		out = r.pattern.ReplaceAllString(out, r.replacement)
	}
	return out
}
