package extractor

import (
	"errors"
	"path/filepath"
	"strings"

	"cv-agent-go/internal/types"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
	ErrEmptyText         = errors.New("文档无可读文本")
)

// supportedMIMETypes 声明MIME到文档类型的映射
var supportedMIMETypes = map[string]types.DocumentType{
	"application/pdf": types.DocTypePDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": types.DocTypeDOCX,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       types.DocTypeXLSX,
	"text/plain": types.DocTypeTXT,
}

// extensionTypes 文件扩展名到文档类型的映射
var extensionTypes = map[string]types.DocumentType{
	".pdf":  types.DocTypePDF,
	".docx": types.DocTypeDOCX,
	".xlsx": types.DocTypeXLSX,
	".txt":  types.DocTypeTXT,
}

// DetectType 根据文件名或声明的MIME类型识别文档类型
// 优先按扩展名判断，扩展名无法识别时退回声明的MIME
func DetectType(filename, mimeType string) types.DocumentType {
	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if t, ok := extensionTypes[ext]; ok {
			return t
		}
	}
	if mimeType != "" {
		// MIME可能带有参数后缀，如 "text/plain; charset=utf-8"
		base := strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
		if t, ok := supportedMIMETypes[strings.ToLower(base)]; ok {
			return t
		}
	}
	return types.DocTypeUnknown
}
