package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/constants"
	"cv-agent-go/internal/types"
)

// 工作经历段落定位与信号识别的正则表
var (
	// 经历章节标题关键词，英西双语
	experienceHeaderRe = regexp.MustCompile(`(?i)\b(?:experiencia|experience|employment|laboral|work)\b`)

	// 月份名+年份的日期标记，覆盖英西两种语言的缩写和全称
	monthYearRe = regexp.MustCompile(`(?i)\b(?:ene|feb|mar|abr|may|jun|jul|ago|sep|oct|nov|dic|jan|apr|aug|dec|presente|present|actualidad|current)[a-z]*\.?(?:\s+(?:de\s+)?\d{4})?\b`)

	// 以公司后缀结尾的公司名短语
	companyRe = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][\w&áéíóúñÁÉÍÓÚÑ]*(?:\s+[A-ZÁÉÍÓÚÑ&][\w&áéíóúñÁÉÍÓÚÑ.]*)*\s+(?:Inc|Corp|LLC|Ltd|S\.A|S\.L)\.?`)

	// 职位关键词加最多两个限定词
	roleRe = regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Principal|Staff)?\s*(?:Developer|Engineer|Analyst|Architect|Lead\b|Manager|Director|Consultant|Desarrollador(?:a)?|Ingenier[oa]|Analista|Arquitect[oa]|Gerente|Consultor(?:a)?|CEO|CTO)(?:\s+[A-Za-zÁÉÍÓÚÑáéíóúñ]+){0,2}`)
)

// splitOnHeader 按章节标题关键词切分全文，返回第一个标题之后的各个段落
// 不存在标题时返回空切片，调用方据此判定章节缺失
func splitOnHeader(text string, headerRe *regexp.Regexp) []string {
	parts := headerRe.Split(text, -1)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// truncateSnippet 截断描述片段，超长时追加省略号
func truncateSnippet(text string, maxLen int) string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) <= maxLen {
		return trimmed
	}
	return string(runes[:maxLen]) + "..."
}

// ExtractWorkExperience 从全文提取工作经历条目
// 按章节关键词切分后逐段扫描三类信号：日期标记、公司后缀、职位关键词
// 段内命中任意一类信号即产出一条记录，缺失字段填充哨兵值，最多保留前两个日期标记
func ExtractWorkExperience(text string) []types.ExperienceEntry {
	segments := splitOnHeader(text, experienceHeaderRe)
	if segments == nil {
		return nil
	}

	var entries []types.ExperienceEntry
	for _, segment := range segments {
		dates := monthYearRe.FindAllString(segment, -1)
		company := companyRe.FindString(segment)
		role := roleRe.FindString(segment)

		if len(dates) == 0 && company == "" && role == "" {
			continue
		}

		entry := types.ExperienceEntry{
			Company: types.SentinelNotSpecified,
			Title:   types.SentinelNotSpecified,
			Snippet: truncateSnippet(segment, constants.ExperienceSnippetMax),
		}
		if company != "" {
			entry.Company = strings.TrimSpace(company)
		}
		if role != "" {
			entry.Title = strings.TrimSpace(role)
		}
		if len(dates) > 2 {
			dates = dates[:2]
		}
		entry.Dates = dates

		entries = append(entries, entry)
	}

	return entries
}
