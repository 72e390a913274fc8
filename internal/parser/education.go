package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/types"
)

// 教育经历的三类全局匹配：学位短语、院校短语、毕业年份
var (
	degreeRe = regexp.MustCompile(`(?i)\b(?:Licenciatura|Ingenier[ií]a|Maestr[ií]a|Doctorado|Bachelor|Master|PhD|MBA|T[eé]cnico|Grado|Diplomado)\b(?:\s+(?:en|in|de|of)\s+[A-Za-zÁÉÍÓÚÑáéíóúñ]+(?:\s+[A-Za-zÁÉÍÓÚÑáéíóúñ]+){0,3})?`)

	institutionRe = regexp.MustCompile(`\b(?:Universidad|University|Instituto|Institute|Colegio|College|Escuela|School)\s+(?:de\s+|of\s+)?[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]*(?:\s+[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]*){0,3}`)

	gradYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// pairAligner 把多个独立匹配列表对齐成教育经历条目
// 按下标配对是沿用的原始行为：列表长度不一致时条目会错位
// 用接口隔离出来，后续可以换成按段落单遍扫描的实现而不动调用方
type pairAligner interface {
	Align(degrees, institutions, years []string) []types.EducationEntry
}

// indexZipAligner 按下标配对的默认实现，学位列表决定条目数量
type indexZipAligner struct{}

func (indexZipAligner) Align(degrees, institutions, years []string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0, len(degrees))
	for i, degree := range degrees {
		entry := types.EducationEntry{
			Degree:      strings.TrimSpace(degree),
			Institution: types.SentinelNotSpecified,
			Year:        types.SentinelNotSpecified,
		}
		if i < len(institutions) {
			entry.Institution = strings.TrimSpace(institutions[i])
		}
		if i < len(years) {
			entry.Year = years[i]
		}
		entries = append(entries, entry)
	}
	return entries
}

var defaultAligner pairAligner = indexZipAligner{}

// ExtractEducation 从全文提取教育经历
// 学位、院校、年份三个列表各自全局匹配后按下标配对
func ExtractEducation(text string) []types.EducationEntry {
	degrees := degreeRe.FindAllString(text, -1)
	if len(degrees) == 0 {
		return nil
	}
	institutions := institutionRe.FindAllString(text, -1)
	years := gradYearRe.FindAllString(text, -1)
	return defaultAligner.Align(degrees, institutions, years)
}
