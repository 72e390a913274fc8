package extractor

import (
	"github.com/abadojack/whatlanggo"
)

// LangUnknown 检测器无法给出可靠结果时的占位值
const LangUnknown = "unknown"

// DetectLanguage 检测文本主要语言，返回ISO 639-1风格的短代码
// 西班牙语 -> "es"，英语 -> "en"，其余语种返回对应的ISO 639-3代码
// 检测失败（文本过短或乱码）时返回 "unknown"
func DetectLanguage(text string) string {
	if text == "" {
		return LangUnknown
	}

	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToString(info.Lang)
	if code == "" {
		return LangUnknown
	}

	switch info.Lang {
	case whatlanggo.Spa:
		return "es"
	case whatlanggo.Eng:
		return "en"
	default:
		return code
	}
}
