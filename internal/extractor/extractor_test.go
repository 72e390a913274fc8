package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cv-agent-go/internal/types"
)

func newTestEngine() *Engine {
	return NewEngine(zerolog.Nop())
}

// TestExtractTXT 验证纯文本解码，包括编码容忍
func TestExtractTXT(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	t.Run("UTF8文本", func(t *testing.T) {
		doc := &types.Document{UUID: "t1", Filename: "cv.txt", Raw: []byte("Desarrollador de software con experiencia")}
		text, err := engine.Extract(ctx, doc)
		require.NoError(t, err, "UTF-8纯文本提取不应失败")
		assert.Equal(t, "Desarrollador de software con experiencia", text)
		assert.Equal(t, types.DocTypeTXT, doc.Type, "提取成功后应回填检测出的类型")
	})

	t.Run("UTF8带BOM", func(t *testing.T) {
		raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Perfil profesional")...)
		doc := &types.Document{UUID: "t2", Filename: "cv.txt", Raw: raw}
		text, err := engine.Extract(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, "Perfil profesional", text, "BOM应被剥离")
	})

	t.Run("Windows1252编码", func(t *testing.T) {
		// "Martínez" 的 Windows-1252 字节，其中 í 是 0xED
		raw := []byte{'M', 'a', 'r', 't', 0xED, 'n', 'e', 'z'}
		doc := &types.Document{UUID: "t3", Filename: "cv.txt", Raw: raw}
		text, err := engine.Extract(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, "Martínez", text, "Latin-1系编码应被透明解码")
	})
}

// TestExtractXLSX 验证电子表格的单元格文本拼接
func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Juan"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Martínez"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Python"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err, "生成测试xlsx失败")

	engine := newTestEngine()
	doc := &types.Document{UUID: "x1", Filename: "datos.xlsx", Raw: buf.Bytes()}
	text, err := engine.Extract(context.Background(), doc)
	require.NoError(t, err, "xlsx提取不应失败")

	assert.Contains(t, text, "Juan")
	assert.Contains(t, text, "Martínez")
	assert.Contains(t, text, "Python")
}

// buildTestDOCX 合成一个最小可解析的docx文件
func buildTestDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	body := ""
	for _, p := range paragraphs {
		body += "<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>"
	}
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body +
		`</w:body></w:document>`

	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	files := map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": relsXML,
	}
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// TestExtractDOCX 验证Word文档的段落文本拼接
func TestExtractDOCX(t *testing.T) {
	raw := buildTestDOCX(t, []string{"Juan Martínez", "Desarrollador Senior"})

	engine := newTestEngine()
	doc := &types.Document{UUID: "d1", Filename: "cv.docx", Raw: raw}
	text, err := engine.Extract(context.Background(), doc)
	require.NoError(t, err, "docx提取不应失败")

	assert.Contains(t, text, "Juan Martínez")
	assert.Contains(t, text, "Desarrollador Senior")
}

// TestExtractUnsupportedFormat 验证未识别的类型返回哨兵错误
func TestExtractUnsupportedFormat(t *testing.T) {
	engine := newTestEngine()
	doc := &types.Document{UUID: "u1", Filename: "archivo.exe", Raw: []byte("data")}
	_, err := engine.Extract(context.Background(), doc)
	assert.ErrorIs(t, err, ErrUnsupportedFormat, "未识别的格式应返回ErrUnsupportedFormat")
}

// TestExtractEmptyText 验证解码结果为空白时返回哨兵错误
func TestExtractEmptyText(t *testing.T) {
	engine := newTestEngine()
	doc := &types.Document{UUID: "e1", Filename: "vacio.txt", Raw: []byte("   \n\t  ")}
	_, err := engine.Extract(context.Background(), doc)
	assert.ErrorIs(t, err, ErrEmptyText, "空白文本应返回ErrEmptyText")
}
