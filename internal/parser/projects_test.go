package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-agent-go/internal/types"
)

// TestExtractProjects 验证项目名、仓库URL与技术关键词的提取
func TestExtractProjects(t *testing.T) {
	text := "PROYECTOS E-commerce Platform desarrollada con Python y Django, " +
		"código en github.com/juanmartinez/ecommerce"

	projects := ExtractProjects(text)
	require.Len(t, projects, 1)
	assert.Contains(t, projects[0].Name, "E-commerce Platform")
	assert.Equal(t, "github.com/juanmartinez/ecommerce", projects[0].URL)
	assert.Contains(t, projects[0].Technologies, "Python")
	assert.Contains(t, projects[0].Technologies, "Django")
}

// TestExtractProjectsURLOnly 验证只有仓库URL时项目名用哨兵填充
func TestExtractProjectsURLOnly(t *testing.T) {
	text := "Projects: mi trabajo está en gitlab.com/dev/herramienta"

	projects := ExtractProjects(text)
	require.Len(t, projects, 1)
	assert.Equal(t, types.SentinelNotSpecified, projects[0].Name)
	assert.Equal(t, "gitlab.com/dev/herramienta", projects[0].URL)
}

// TestExtractProjectsNameOnly 验证没有URL时用未找到哨兵
func TestExtractProjectsNameOnly(t *testing.T) {
	text := "PORTFOLIO Inventory System construido el año pasado"

	projects := ExtractProjects(text)
	require.Len(t, projects, 1)
	assert.Equal(t, types.SentinelNotFound, projects[0].URL)
}

// TestExtractProjectsNoSection 验证无项目章节时返回空
func TestExtractProjectsNoSection(t *testing.T) {
	assert.Empty(t, ExtractProjects("Experiencia laboral en varias empresas"))
}

// TestExtractProjectsCountByMax 条目数取项目名与URL列表的较大者
func TestExtractProjectsCountByMax(t *testing.T) {
	text := "PROJECTS Billing System en github.com/acme/billing " +
		"y otro repo en github.com/acme/extras"

	projects := ExtractProjects(text)
	require.Len(t, projects, 2)
	assert.Contains(t, projects[0].Name, "Billing System")
	assert.Equal(t, types.SentinelNotSpecified, projects[1].Name)
	assert.Equal(t, "github.com/acme/extras", projects[1].URL)
}
