package processor

import (
	"errors"
	"fmt"
)

// 流水线门禁阶段的哨兵错误，供调用方用errors.Is判断
var (
	// ErrShortDocument 提取文本过短（不足30字符）
	ErrShortDocument = errors.New("document text too short")
	// ErrDuplicateDocument 文本内容哈希已存在
	ErrDuplicateDocument = errors.New("duplicate document content")
	// ErrUnsupportedLanguage 检测出的语言不在支持范围内
	ErrUnsupportedLanguage = errors.New("unsupported document language")
)

// ProcessError 带上下文的流水线错误
// 包装底层哨兵错误并附带文档UUID、出错环节和细节信息
type ProcessError struct {
	DocumentUUID string // 关联的文档UUID
	Op           string // 出错的流水线环节
	BaseErr      error  // 底层哨兵错误
	Detail       string // 补充细节
}

// Error 实现error接口
func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("处理文档 %s 失败 [环节: %s]", e.DocumentUUID, e.Op)
	if e.BaseErr != nil {
		msg += fmt.Sprintf(": %v", e.BaseErr)
	}
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	return msg
}

// Unwrap 支持errors.Is/errors.As链式判断
func (e *ProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 支持直接与哨兵错误比较
func (e *ProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewProcessError 创建流水线错误
func NewProcessError(documentUUID, op string, baseErr error, detail string) *ProcessError {
	return &ProcessError{
		DocumentUUID: documentUUID,
		Op:           op,
		BaseErr:      baseErr,
		Detail:       detail,
	}
}

// NewShortDocumentError 文本过短错误
func NewShortDocumentError(documentUUID string, length int) *ProcessError {
	return NewProcessError(documentUUID, "length_check", ErrShortDocument,
		fmt.Sprintf("文本长度 %d 小于最低要求", length))
}

// NewDuplicateDocumentError 重复文档错误，已知原文档时附带其UUID
func NewDuplicateDocumentError(documentUUID, md5, originalUUID string) *ProcessError {
	detail := fmt.Sprintf("MD5 %s 已存在", md5)
	if originalUUID != "" {
		detail += fmt.Sprintf("，原文档 %s", originalUUID)
	}
	return NewProcessError(documentUUID, "dedup_check", ErrDuplicateDocument, detail)
}

// NewUnsupportedLanguageError 语言不支持错误
func NewUnsupportedLanguageError(documentUUID, language string) *ProcessError {
	return NewProcessError(documentUUID, "language_gate", ErrUnsupportedLanguage,
		fmt.Sprintf("检测到语言 %s", language))
}
