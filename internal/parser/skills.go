package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/types"
)

// skillVocab 14个固定技能类别各自的关键词表，规范大小写
// 数据驱动：新增类别或关键词只改这张表，不碰匹配逻辑
var skillVocab = map[types.SkillCategory][]string{
	types.CatProgrammingLanguages: {
		"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#",
		"PHP", "Ruby", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
	},
	types.CatFrameworks: {
		"React", "Angular", "Vue", "Django", "Flask", "FastAPI", "Spring",
		"Laravel", "Rails", "Express", "Node.js", ".NET", "Symfony", "Next.js",
	},
	types.CatDatabases: {
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle", "SQL Server",
		"SQLite", "Cassandra", "DynamoDB", "Elasticsearch", "MariaDB",
	},
	types.CatTools: {
		"Git", "Docker", "Kubernetes", "Jenkins", "Terraform", "Ansible",
		"Jira", "Confluence", "Grafana", "Prometheus", "Maven", "Gradle",
	},
	types.CatMethodologies: {
		"Agile", "Scrum", "Kanban", "DevOps", "TDD", "CI/CD", "Waterfall",
		"Lean", "XP", "SAFe",
	},
	types.CatCloudPlatforms: {
		"AWS", "Azure", "GCP", "Google Cloud", "Heroku", "DigitalOcean",
		"Cloudflare", "Vercel",
	},
	types.CatSoftSkills: {
		"Leadership", "Liderazgo", "Communication", "Comunicación", "Teamwork",
		"Trabajo en equipo", "Problem solving", "Resolución de problemas",
		"Adaptability", "Adaptabilidad", "Creativity", "Creatividad",
		"Negotiation", "Negociación",
	},
	types.CatEducation: {
		"Teaching", "Docencia", "Pedagogía", "Curriculum", "Tutoring",
		"Tutoría", "E-learning", "Capacitación",
	},
	types.CatAdministration: {
		"Accounting", "Contabilidad", "Finance", "Finanzas", "Auditoría",
		"Payroll", "Nómina", "Logistics", "Logística", "Procurement",
	},
	types.CatHealth: {
		"Nursing", "Enfermería", "Pharmacy", "Farmacia", "First aid",
		"Primeros auxilios", "Fisioterapia", "Nutrition", "Nutrición",
	},
	types.CatLanguages: {
		"Bilingual", "Bilingüe", "Translation", "Traducción", "Interpretation",
		"Interpretación", "TOEFL", "IELTS",
	},
	types.CatArtsCommunication: {
		"Photoshop", "Illustrator", "Figma", "Marketing", "Copywriting",
		"Journalism", "Periodismo", "Diseño gráfico", "Graphic design", "SEO",
	},
	types.CatSciences: {
		"Statistics", "Estadística", "Biology", "Biología", "Chemistry",
		"Química", "Physics", "Física", "Data analysis", "Análisis de datos",
	},
	types.CatEngineering: {
		"AutoCAD", "SolidWorks", "PLC", "SCADA", "Electrónica", "Electronics",
		"Mecatrónica", "Civil", "Industrial", "Mantenimiento",
	},
}

// flatSkillVocab 兼容旧版的扁平技能词表，跨全部领域
var flatSkillVocab = []string{
	"Python", "Java", "JavaScript", "SQL", "React", "Docker", "AWS", "Git",
	"Excel", "Scrum", "Linux", "HTML", "CSS", "Photoshop", "AutoCAD",
	"Contabilidad", "Enfermería", "Marketing", "Liderazgo", "Comunicación",
}

// otherSkillRe 候选新技能：长度大于3的大写开头单词
var otherSkillRe = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][A-Za-zÁÉÍÓÚÑáéíóúñ]{3,}\b`)

// containsTerm 判断小写化文本中是否出现关键词，要求词边界
// 不用\b是因为关键词可能含 . / + # 等非单词字符
func containsTerm(lowerText, lowerTerm string) bool {
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerTerm)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(lowerTerm)

		beforeOK := idx == 0 || !isWordChar(lowerText[idx-1])
		afterOK := end == len(lowerText) || !isWordChar(lowerText[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// CategorizeSkills 对全文做技能归类
// 大小写不敏感匹配，类别内按规范词去重；同时产出发现的候选新技能
func CategorizeSkills(text string) types.SkillsTaxonomy {
	lower := strings.ToLower(text)

	taxonomy := types.SkillsTaxonomy{
		Categories: make(map[types.SkillCategory][]string),
	}

	known := make(map[string]bool)
	for _, cat := range types.AllSkillCategories {
		var matched []string
		seen := make(map[string]bool)
		for _, term := range skillVocab[cat] {
			lowerTerm := strings.ToLower(term)
			known[lowerTerm] = true
			if seen[lowerTerm] {
				continue
			}
			if containsTerm(lower, lowerTerm) {
				matched = append(matched, term)
				seen[lowerTerm] = true
			}
		}
		if len(matched) > 0 {
			taxonomy.Categories[cat] = matched
		}
	}

	// 扁平词表里的词也是已知技能，不能再当候选新技能冒出来
	for _, term := range flatSkillVocab {
		known[strings.ToLower(term)] = true
	}

	taxonomy.Other = discoverOtherSkills(text, known, taxonomy.Categories)
	return taxonomy
}

// ExtractFlatSkills 兼容旧版的扁平技能列表
func ExtractFlatSkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, term := range flatSkillVocab {
		if containsTerm(lower, strings.ToLower(term)) {
			skills = append(skills, term)
		}
	}
	return skills
}

// discoverOtherSkills 候选新技能发现
// 把不在已知词表里、也没被归类命中的大写开头长单词当作候选
// 误报率高，结果仅作提示用途
func discoverOtherSkills(text string, known map[string]bool, detected map[types.SkillCategory][]string) []string {
	detectedLower := make(map[string]bool)
	for _, terms := range detected {
		for _, t := range terms {
			detectedLower[strings.ToLower(t)] = true
		}
	}

	var others []string
	seen := make(map[string]bool)
	for _, word := range otherSkillRe.FindAllString(text, -1) {
		cleaned := strings.TrimRight(word, ".,;:!?")
		lower := strings.ToLower(cleaned)
		if len([]rune(cleaned)) <= 3 || known[lower] || detectedLower[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		others = append(others, cleaned)
	}
	return others
}
