package parser

import (
	"regexp"
	"strings"

	"cv-agent-go/internal/constants"
	"cv-agent-go/internal/types"
)

var (
	projectHeaderRe = regexp.MustCompile(`(?i)\b(?:proyectos?|projects?|portfolio)\b`)

	// 以项目类型后缀结尾的大写短语
	projectNameRe = regexp.MustCompile(`\b[A-ZÁÉÍÓÚÑ][\w\-áéíóúñ]*(?:\s+[A-ZÁÉÍÓÚÑa-z][\w\-áéíóúñ]*)*\s*(?:App|System|Platform|Tool|Dashboard|API)\b`)

	// 代码托管平台的仓库URL
	repoURLRe = regexp.MustCompile(`(?i)(?:github\.com|gitlab\.com|bitbucket\.org)/[\w\-./]+`)
)

// projectTechVocab 项目描述中识别的技术关键词，规范大小写
var projectTechVocab = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "PHP", "Ruby",
	"React", "Angular", "Vue", "Django", "Flask", "FastAPI", "Spring", "Node.js",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Docker", "Kubernetes",
	"AWS", "Azure", "GCP", "Stripe", "GraphQL", "REST",
}

// ExtractProjects 从全文提取项目经历
// 按项目章节关键词切分，段内项目名与仓库URL按下标配对（与教育经历同样的脆弱设计）
// 技术关键词按段收集并去重
func ExtractProjects(text string) []types.Project {
	segments := splitOnHeader(text, projectHeaderRe)
	if segments == nil {
		return nil
	}

	var projects []types.Project
	for _, segment := range segments {
		names := projectNameRe.FindAllString(segment, -1)
		urls := repoURLRe.FindAllString(segment, -1)
		if len(names) == 0 && len(urls) == 0 {
			continue
		}

		techs := collectTech(segment)
		snippet := truncateSnippet(segment, constants.ProjectSnippetMax)

		count := len(names)
		if len(urls) > count {
			count = len(urls)
		}
		for i := 0; i < count; i++ {
			project := types.Project{
				Name:         types.SentinelNotSpecified,
				URL:          types.SentinelNotFound,
				Technologies: techs,
				Snippet:      snippet,
			}
			if i < len(names) {
				project.Name = strings.TrimSpace(names[i])
			}
			if i < len(urls) {
				project.URL = urls[i]
			}
			projects = append(projects, project)
		}
	}

	return projects
}

// collectTech 在文本段内收集出现的技术关键词，保持词表顺序并去重
func collectTech(segment string) []string {
	lower := strings.ToLower(segment)
	var techs []string
	for _, term := range projectTechVocab {
		if containsTerm(lower, strings.ToLower(term)) {
			techs = append(techs, term)
		}
	}
	return techs
}
