package extractor

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	// 段落边界与文本run的WordprocessingML标记
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxRunRe       = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
)

// extractDOCX 提取Word文档的段落文本，段落之间用单个空格连接
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("解析DOCX失败: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// 按段落切分document.xml，逐段拼接其中的文本run
	var paragraphs []string
	for _, block := range docxParagraphRe.Split(content, -1) {
		var runs []string
		for _, m := range docxRunRe.FindAllStringSubmatch(block, -1) {
			runs = append(runs, html.UnescapeString(m[1]))
		}
		if p := strings.Join(runs, ""); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return strings.Join(paragraphs, " "), nil
}
