package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/constants"
	"cv-agent-go/internal/types"
)

// certPatterns 固定的厂商/证书正则表，数据驱动，新增证书只需加一行
var certPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)AWS\s+Certified[\w\s\-]*`),
	regexp.MustCompile(`(?i)Microsoft\s+Certified[\w\s\-:]*`),
	regexp.MustCompile(`(?i)Google\s+Cloud[\w\s]*(?:Certified|Architect|Engineer)[\w\s\-]*`),
	regexp.MustCompile(`(?i)Azure\s+(?:Administrator|Developer|Architect|Fundamentals)[\w\s\-]*`),
	regexp.MustCompile(`(?i)\bPMP\b`),
	regexp.MustCompile(`(?i)Scrum\s+Master|\bCSM\b|\bPSM\b`),
	regexp.MustCompile(`(?i)\bTOEFL\b[\w\s:]*`),
	regexp.MustCompile(`(?i)\bIELTS\b[\w\s:]*`),
	regexp.MustCompile(`(?i)\bCCNA\b|\bCCNP\b|Cisco\s+Certified[\w\s]*`),
	regexp.MustCompile(`(?i)Oracle\s+Certified[\w\s]*`),
	regexp.MustCompile(`(?i)\bCKA\b|\bCKAD\b|Kubernetes\s+(?:Administrator|Developer)`),
	regexp.MustCompile(`(?i)(?:React|Java|Python)\s+(?:Certification|Certificado)[\w\s]*`),
}

// 证书文本包含这些关键词时归为技术类，否则归为职业类
var techCertKeywords = []string{
	"aws", "azure", "google cloud", "cloud", "cisco", "ccna", "ccnp",
	"oracle", "kubernetes", "cka", "ckad", "react", "java", "python",
	"microsoft", "developer", "architect", "engineer", "administrator",
}

var certYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// ExtractCertifications 从全文扫描证书记录
// 每个命中从匹配位置往后200字符内找第一个4位年份作为获得年份
func ExtractCertifications(text string) []types.Certification {
	var certs []types.Certification
	seen := make(map[string]bool)

	for _, pattern := range certPatterns {
		matches := pattern.FindAllStringIndex(text, -1)
		for _, loc := range matches {
			name := strings.TrimSpace(text[loc[0]:loc[1]])
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true

			cert := types.Certification{
				Name:     name,
				Category: classifyCert(name),
			}

			// 年份在匹配结束位置之后的窗口内搜索
			windowEnd := loc[1] + constants.CertYearWindow
			if windowEnd > len(text) {
				windowEnd = len(text)
			}
			if year := certYearRe.FindString(text[loc[1]:windowEnd]); year != "" {
				cert.Year = year
			}

			certs = append(certs, cert)
		}
	}

	return certs
}

func classifyCert(name string) types.CertCategory {
	lower := strings.ToLower(name)
	for _, kw := range techCertKeywords {
		if strings.Contains(lower, kw) {
			return types.CertTechnical
		}
	}
	return types.CertProfessional
}
