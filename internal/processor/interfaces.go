package processor

import (
	"context"

	"cv-agent-go/internal/types"
)

// TextExtractor 按文档格式提取纯文本
type TextExtractor interface {
	Extract(ctx context.Context, doc *types.Document) (string, error)
}

// LanguageDetector 检测文本主要语言，失败时返回unknown而不报错
type LanguageDetector interface {
	Detect(text string) string
}

// ProfileParser 把已接受的文本解析成候选人档案
type ProfileParser interface {
	Parse(documentUUID, text string) *types.CandidateProfile
}

// DedupGuard 文本内容哈希去重
// Check只读不写：哈希的登记由调用方在整条流水线成功后完成
type DedupGuard interface {
	// Check 哈希已存在时返回true及首次登记该哈希的文档UUID（可能为空）
	Check(ctx context.Context, md5 string) (originalUUID string, exists bool, err error)
	// Record 登记哈希，关联到文档UUID
	Record(ctx context.Context, md5, documentUUID string) error
}
