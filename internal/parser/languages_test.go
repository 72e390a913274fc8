package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractLanguages 验证语言与熟练度的组合提取
func TestExtractLanguages(t *testing.T) {
	text := "IDIOMAS Español - Nativo, Inglés - Avanzado"

	skills := ExtractLanguages(text)
	require.Len(t, skills, 2)

	assert.Equal(t, "Español", skills[0].Language)
	assert.Equal(t, "Nativo", skills[0].Level)
	assert.Equal(t, "unspecified", skills[0].Certification)

	assert.Equal(t, "Inglés", skills[1].Language)
	assert.Equal(t, "Avanzado", skills[1].Level)
	assert.Equal(t, "TOEFL", skills[1].Certification, "英语条目标记TOEFL证书")
}

// TestExtractLanguagesEnglishNaming 英文写法的English同样命中TOEFL标签
func TestExtractLanguagesEnglishNaming(t *testing.T) {
	skills := ExtractLanguages("English: Fluent")
	require.Len(t, skills, 1)
	assert.Equal(t, "English", skills[0].Language)
	assert.Equal(t, "Fluent", skills[0].Level)
	assert.Equal(t, "TOEFL", skills[0].Certification)
}

// TestExtractLanguagesDedup 同一语言多次出现只保留首个命中
func TestExtractLanguagesDedup(t *testing.T) {
	skills := ExtractLanguages("Inglés - Básico ... Inglés - Avanzado")
	require.Len(t, skills, 1)
	assert.Equal(t, "Básico", skills[0].Level)
}

// TestExtractLanguagesNone 无命中时返回空
func TestExtractLanguagesNone(t *testing.T) {
	assert.Empty(t, ExtractLanguages("Texto sin sección de idiomas"))
}
