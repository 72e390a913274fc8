package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-agent-go/internal/types"
)

// TestExtractContactInfo 验证联系方式各字段的首个匹配
func TestExtractContactInfo(t *testing.T) {
	text := "Juan Pérez, juan@mail.com, +34 666 123 456, Madrid, España, linkedin.com/in/juanperez"
	info := ExtractContactInfo(text)

	assert.Equal(t, "Juan Pérez", info.Name, "姓名应取前两个连续的首字母大写单词")
	assert.Equal(t, "juan@mail.com", info.Email)
	assert.Contains(t, info.Phone, "666", "电话应匹配到给出的数字")
	assert.Equal(t, "Madrid, España", info.Location)
	assert.Equal(t, "linkedin.com/in/juanperez", info.LinkedIn)
	assert.Equal(t, types.SentinelNotFound, info.GitHub, "未出现的字段应为哨兵值")
}

// TestExtractContactInfoSentinels 验证空文本时所有字段都是哨兵值而不是空串
func TestExtractContactInfoSentinels(t *testing.T) {
	info := ExtractContactInfo("")

	assert.Equal(t, types.SentinelNotFound, info.Email)
	assert.Equal(t, types.SentinelNotFound, info.Phone)
	assert.Equal(t, types.SentinelNotDetected, info.Name)
	assert.Equal(t, types.SentinelNotDetected, info.Location)
	assert.Equal(t, types.SentinelNotFound, info.LinkedIn)
	assert.Equal(t, types.SentinelNotFound, info.GitHub)
}

// TestExtractContactInfoFirstMatchWins 验证同类多个匹配时取文本中最靠前的
func TestExtractContactInfoFirstMatchWins(t *testing.T) {
	text := "Contacto: primero@mail.com y también segundo@mail.com"
	info := ExtractContactInfo(text)
	assert.Equal(t, "primero@mail.com", info.Email, "应取文本位置最靠前的匹配")
}

// TestExtractContactInfoGitHub 验证GitHub链接的大小写不敏感匹配
func TestExtractContactInfoGitHub(t *testing.T) {
	info := ExtractContactInfo("Repositorio: GitHub.com/juanmartinez")
	assert.Equal(t, "GitHub.com/juanmartinez", info.GitHub)
}
