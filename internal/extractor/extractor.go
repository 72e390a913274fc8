package extractor

import (
	"context"
	"fmt"
	"strings"

	"cv-agent-go/internal/types"

	"github.com/rs/zerolog"
)

// Engine 文本提取引擎，按文档类型分发到具体的解码器
// 提取失败时不保留任何中间状态
type Engine struct {
	logger zerolog.Logger
}

// NewEngine 创建文本提取引擎
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Extract 从文档字节中提取纯文本
// 未识别的类型返回ErrUnsupportedFormat，解码结果为空白返回ErrEmptyText
func (e *Engine) Extract(ctx context.Context, doc *types.Document) (string, error) {
	docType := doc.Type
	if docType == "" || docType == types.DocTypeUnknown {
		docType = DetectType(doc.Filename, doc.MimeType)
	}

	var text string
	var err error

	switch docType {
	case types.DocTypePDF:
		text, err = extractPDF(doc.Raw)
	case types.DocTypeDOCX:
		text, err = extractDOCX(doc.Raw)
	case types.DocTypeXLSX:
		text, err = extractXLSX(doc.Raw)
	case types.DocTypeTXT:
		text, err = extractTXT(doc.Raw)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.Filename)
	}

	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("document_uuid", doc.UUID).
			Str("type", string(docType)).
			Msg("文档解码失败")
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyText, doc.Filename)
	}

	doc.Type = docType
	return text, nil
}
