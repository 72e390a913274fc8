package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-agent-go/internal/types"
)

// TestExtractCertificationsAWS 验证AWS证书与后置年份窗口
func TestExtractCertificationsAWS(t *testing.T) {
	text := "CERTIFICACIONES AWS Certified Solutions Architect - Associate (2022) y otros logros"

	certs := ExtractCertifications(text)
	require.NotEmpty(t, certs, "AWS证书模式应被命中")

	found := false
	for _, cert := range certs {
		if strings.Contains(cert.Name, "AWS Certified Solutions Architect") {
			found = true
			assert.Equal(t, "2022", cert.Year, "年份应在匹配位置之后200字符内找到")
			assert.Equal(t, types.CertTechnical, cert.Category, "AWS证书应归为技术类")
		}
	}
	assert.True(t, found, "应存在名称包含AWS Certified Solutions Architect的证书")
}

// TestExtractCertificationsYearOutOfWindow 验证年份超出窗口时留空
func TestExtractCertificationsYearOutOfWindow(t *testing.T) {
	padding := strings.Repeat("x ", 150) // 300字符的填充，把年份推出窗口
	text := "PMP " + padding + "2021"

	certs := ExtractCertifications(text)
	require.NotEmpty(t, certs)
	assert.Empty(t, certs[0].Year, "窗口外的年份不应被关联")
}

// TestExtractCertificationsProfessionalCategory 验证非技术证书的类别
func TestExtractCertificationsProfessionalCategory(t *testing.T) {
	certs := ExtractCertifications("Certificado PMP obtenido en 2020")
	require.NotEmpty(t, certs)
	assert.Equal(t, types.CertProfessional, certs[0].Category, "PMP应归为职业类")
	assert.Equal(t, "2020", certs[0].Year)
}

// TestExtractCertificationsScrum 验证Scrum证书模式
func TestExtractCertificationsScrum(t *testing.T) {
	certs := ExtractCertifications("Scrum Master certificado desde 2019")
	require.NotEmpty(t, certs)
	assert.Contains(t, certs[0].Name, "Scrum Master")
}

// TestExtractCertificationsNone 验证无证书文本返回空
func TestExtractCertificationsNone(t *testing.T) {
	assert.Empty(t, ExtractCertifications("Texto sin credenciales reconocibles"))
}
