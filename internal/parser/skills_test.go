package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-agent-go/internal/types"
)

// TestCategorizeSkillsCaseInsensitive 验证大小写不敏感匹配与类别内去重
func TestCategorizeSkillsCaseInsensitive(t *testing.T) {
	taxonomy := CategorizeSkills("Domino PYTHON y también python para scripts")

	langs := taxonomy.Categories[types.CatProgrammingLanguages]
	require.Len(t, langs, 1, "PYTHON和python应只产出一个条目")
	assert.Equal(t, "Python", langs[0], "条目应使用词表中的规范大小写")
}

// TestCategorizeSkillsMultipleCategories 验证多类别同时命中
func TestCategorizeSkillsMultipleCategories(t *testing.T) {
	text := "Experiencia con Python, React, PostgreSQL, Docker, Scrum y AWS. Liderazgo de equipos."
	taxonomy := CategorizeSkills(text)

	assert.Contains(t, taxonomy.Categories[types.CatProgrammingLanguages], "Python")
	assert.Contains(t, taxonomy.Categories[types.CatFrameworks], "React")
	assert.Contains(t, taxonomy.Categories[types.CatDatabases], "PostgreSQL")
	assert.Contains(t, taxonomy.Categories[types.CatTools], "Docker")
	assert.Contains(t, taxonomy.Categories[types.CatMethodologies], "Scrum")
	assert.Contains(t, taxonomy.Categories[types.CatCloudPlatforms], "AWS")
	assert.Contains(t, taxonomy.Categories[types.CatSoftSkills], "Liderazgo")
}

// TestCategorizeSkillsWordBoundary 验证关键词要求词边界
func TestCategorizeSkillsWordBoundary(t *testing.T) {
	// "Rusty" 不应命中 "Rust"，"Gong" 不应命中 "Go"
	taxonomy := CategorizeSkills("Rusty Gong toca instrumentos")
	assert.NotContains(t, taxonomy.Categories[types.CatProgrammingLanguages], "Rust")
	assert.NotContains(t, taxonomy.Categories[types.CatProgrammingLanguages], "Go")
}

// TestDiscoverOtherSkills 验证候选新技能的发现
func TestDiscoverOtherSkills(t *testing.T) {
	taxonomy := CategorizeSkills("Conocimientos de Python y Blockchain avanzado")

	assert.Contains(t, taxonomy.Other, "Blockchain", "词表外的大写长单词应被发现")
	assert.NotContains(t, taxonomy.Other, "Python", "已知词表词不应重复出现在候选里")
}

// TestDiscoverOtherSkillsFlatVocabSuppressed 验证仅在扁平词表里的词不算候选新技能
func TestDiscoverOtherSkillsFlatVocabSuppressed(t *testing.T) {
	// Excel和Linux只在扁平词表里，不属于任何类别词表
	taxonomy := CategorizeSkills("Manejo de Excel y Linux con Blockchain")

	assert.NotContains(t, taxonomy.Other, "Excel", "扁平词表词是已知技能")
	assert.NotContains(t, taxonomy.Other, "Linux", "扁平词表词是已知技能")
	assert.Contains(t, taxonomy.Other, "Blockchain")
}

// TestExtractFlatSkills 验证兼容旧版的扁平技能列表
func TestExtractFlatSkills(t *testing.T) {
	skills := ExtractFlatSkills("Python, Excel y Contabilidad con Docker")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Excel")
	assert.Contains(t, skills, "Contabilidad")
	assert.Contains(t, skills, "Docker")
	assert.NotContains(t, skills, "Java")
}

// TestTotalSkillCount 验证跨类别的技能词总数
func TestTotalSkillCount(t *testing.T) {
	taxonomy := CategorizeSkills("Python y React con Docker")
	assert.Equal(t, 3, taxonomy.TotalSkillCount())
}
