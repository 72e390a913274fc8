package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/types"
)

// languageLevelRe 固定的"语言名+熟练度"组合正则，英西双语各自的常见写法
var languageLevelRe = regexp.MustCompile(`(?i)\b(Español|Spanish|Inglés|English|Francés|French|Alemán|German|Portugués|Portuguese|Italiano|Italian|Chino|Chinese|Japonés|Japanese)\s*[-–—:]?\s*(Nativo|Native|Avanzado|Advanced|Intermedio|Intermediate|Básico|Basic|Fluido|Fluent|Profesional|Professional|Conversacional|Conversational)\b`)

// englishNames 判定语言是否为英语，用于证书标签的启发式
var englishNames = map[string]bool{
	"english": true,
	"inglés":  true,
	"ingles":  true,
}

// ExtractLanguages 从全文扫描语言能力记录
// 每个命中按空白切分，首token为语言名、末token为熟练度
// 英语附带TOEFL证书标签，其余语言为unspecified
func ExtractLanguages(text string) []types.LanguageSkill {
	matches := languageLevelRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var skills []types.LanguageSkill
	seen := make(map[string]bool)
	for _, match := range matches {
		fields := strings.Fields(strings.NewReplacer("-", " ", "–", " ", "—", " ", ":", " ").Replace(match))
		if len(fields) < 2 {
			continue
		}
		language := fields[0]
		level := fields[len(fields)-1]

		key := strings.ToLower(language)
		if seen[key] {
			continue
		}
		seen[key] = true

		cert := "unspecified"
		if englishNames[key] {
			cert = "TOEFL"
		}

		skills = append(skills, types.LanguageSkill{
			Language:      language,
			Level:         level,
			Certification: cert,
		})
	}

	return skills
}
