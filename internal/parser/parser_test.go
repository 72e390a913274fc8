package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-agent-go/internal/types"
)

// sampleCV 一份西语简历样本，覆盖全部章节
const sampleCV = `Juan Carlos Pérez García
Desarrollador de Software Senior
Email: juan.perez@email.com
Teléfono: +34 612 345 678
Madrid, España
linkedin.com/in/juanperez
github.com/juanperez

EXPERIENCIA LABORAL
TechCorp Inc. | Enero 2020 - Presente
Desarrollador backend con Python y Django, microservicios en AWS

EDUCACIÓN
Ingeniería en Sistemas - Universidad Politécnica de Madrid, 2018

HABILIDADES
Python, Django, PostgreSQL, Docker, AWS

CERTIFICACIONES
AWS Certified Solutions Architect - Associate (2022)

PROYECTOS
E-commerce Platform con Python y Stripe
github.com/juanperez/ecommerce

IDIOMAS
Español - Nativo
Inglés - Avanzado`

// TestParseFullProfile 端到端验证全部章节提取器在一份完整简历上的汇总结果
func TestParseFullProfile(t *testing.T) {
	p := NewHeuristicParser(zerolog.Nop())
	profile := p.Parse("doc-0001", sampleCV)

	require.NotNil(t, profile)
	assert.Equal(t, "doc-0001", profile.DocumentUUID)
	assert.Equal(t, len([]rune(sampleCV)), profile.TextLength)
	assert.Empty(t, profile.Degraded, "所有章节都应正常完成")

	// 联系方式
	assert.Equal(t, "Juan Carlos", profile.Contact.Name)
	assert.Equal(t, "juan.perez@email.com", profile.Contact.Email)
	assert.Equal(t, "+34 612 345 678", profile.Contact.Phone)
	assert.Equal(t, "Madrid, España", profile.Contact.Location)
	assert.Equal(t, "linkedin.com/in/juanperez", profile.Contact.LinkedIn)
	assert.Equal(t, "github.com/juanperez", profile.Contact.GitHub)

	// 工作经历
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "TechCorp Inc.", profile.Experience[0].Company)
	assert.Contains(t, profile.Experience[0].Title, "Desarrollador")
	assert.Equal(t, []string{"Enero 2020", "Presente"}, profile.Experience[0].Dates)

	// 教育经历：年份列表的首个命中是经历日期里的2020，按下标配对会错位
	// 这是沿用的原始行为，测试钉住它
	require.Len(t, profile.Education, 1)
	assert.Contains(t, profile.Education[0].Degree, "Ingeniería")
	assert.Contains(t, profile.Education[0].Institution, "Universidad")
	assert.Equal(t, "2020", profile.Education[0].Year)

	// 证书
	require.Len(t, profile.Certifications, 1)
	assert.Contains(t, profile.Certifications[0].Name, "AWS Certified")
	assert.Equal(t, "2022", profile.Certifications[0].Year)
	assert.Equal(t, types.CertTechnical, profile.Certifications[0].Category)

	// 项目
	require.Len(t, profile.Projects, 1)
	assert.Contains(t, profile.Projects[0].Name, "E-commerce Platform")
	assert.Equal(t, "github.com/juanperez/ecommerce", profile.Projects[0].URL)
	assert.Contains(t, profile.Projects[0].Technologies, "Python")
	assert.Contains(t, profile.Projects[0].Technologies, "Stripe")

	// 语言能力
	require.Len(t, profile.Languages, 2)
	assert.Equal(t, "Español", profile.Languages[0].Language)
	assert.Equal(t, "TOEFL", profile.Languages[1].Certification)

	// 技能归类
	assert.Contains(t, profile.Skills.Categories[types.CatProgrammingLanguages], "Python")
	assert.Contains(t, profile.Skills.Categories[types.CatFrameworks], "Django")
	assert.Contains(t, profile.Skills.Categories[types.CatDatabases], "PostgreSQL")
	assert.Contains(t, profile.Skills.Categories[types.CatTools], "Docker")
	assert.Contains(t, profile.Skills.Categories[types.CatCloudPlatforms], "AWS")
	assert.Equal(t, 5, profile.Skills.TotalSkillCount())
	assert.NotEmpty(t, profile.Skills.Other, "大写长单词启发式必然产生候选新技能")

	// "Presente"无法解析为年份，该条经历不计入年限
	assert.Equal(t, 0, profile.ExperienceYears)

	// 50 + 经历10 + 证书5 + 项目3 + 技能10 + 语言6
	assert.Equal(t, 84, profile.AptitudeScore)
}

// TestParseEmptySections 缺少全部章节时各字段落到哨兵或空值
func TestParseEmptySections(t *testing.T) {
	p := NewHeuristicParser(zerolog.Nop())
	profile := p.Parse("doc-0002", "Texto plano sin estructura alguna")

	assert.Equal(t, types.SentinelNotFound, profile.Contact.Email)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Certifications)
	assert.Empty(t, profile.Projects)
	assert.Empty(t, profile.Languages)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, 50, profile.AptitudeScore, "空档案得基准分")
}
