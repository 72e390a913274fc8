package parser

import (
	"regexp"

	"cv-agent-go/internal/types"
)

// 联系方式提取使用的正则表，全部在包初始化时编译
var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\d{1,3}[\s\-]?\(?\d+\)?[\s\-]?\d{3,4}[\s\-]?\d{3,4}`)
	nameRe     = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+\s[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+`)
	locationRe = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+,\s*(?:[A-Z]{2,}|[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+)`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9\-_%]+`)
)

// ExtractContactInfo 从全文提取联系方式，每个字段取第一个匹配
// 未命中的字段填充哨兵值，调用方不需要做nil判断
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email:    types.SentinelNotFound,
		Phone:    types.SentinelNotFound,
		Name:     types.SentinelNotDetected,
		Location: types.SentinelNotDetected,
		LinkedIn: types.SentinelNotFound,
		GitHub:   types.SentinelNotFound,
	}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = m
	}
	if m := nameRe.FindString(text); m != "" {
		info.Name = m
	}
	if m := locationRe.FindString(text); m != "" {
		info.Location = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = m
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHub = m
	}

	return info
}
