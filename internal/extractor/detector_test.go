package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-agent-go/internal/types"
)

// TestDetectTypeByExtension 验证按扩展名识别文档类型
func TestDetectTypeByExtension(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		mimeType string
		expected types.DocumentType
	}{
		{"PDF扩展名", "resume.pdf", "", types.DocTypePDF},
		{"大写扩展名", "RESUME.PDF", "", types.DocTypePDF},
		{"Word文档", "cv.docx", "", types.DocTypeDOCX},
		{"电子表格", "datos.xlsx", "", types.DocTypeXLSX},
		{"纯文本", "notas.txt", "", types.DocTypeTXT},
		{"未知扩展名", "archivo.exe", "", types.DocTypeUnknown},
		{"无扩展名无MIME", "archivo", "", types.DocTypeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectType(tc.filename, tc.mimeType), "文档类型识别结果与预期不符")
		})
	}
}

// TestDetectTypeByMIME 验证扩展名无法识别时回退到声明的MIME类型
func TestDetectTypeByMIME(t *testing.T) {
	assert.Equal(t, types.DocTypePDF, DetectType("archivo", "application/pdf"))
	assert.Equal(t, types.DocTypeDOCX, DetectType("", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.Equal(t, types.DocTypeTXT, DetectType("archivo.bin", "text/plain; charset=utf-8"), "带参数的MIME类型应该被正确解析")
	assert.Equal(t, types.DocTypeUnknown, DetectType("archivo", "image/png"))
}
