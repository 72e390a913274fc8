package constants

import "time"

const (
	// DefaultExtractorVer 当前启发式提取器的版本号，随词表调整递增
	DefaultExtractorVer = "1.0"

	// MinTextLength 提取文本的最小有效长度（字符数），低于该值判定为无效文档
	MinTextLength = 30

	// ExperienceSnippetMax 工作经历片段的最大长度
	ExperienceSnippetMax = 200
	// ProjectSnippetMax 项目片段的最大长度
	ProjectSnippetMax = 150
	// CertYearWindow 证书匹配位置之后搜索年份的窗口大小（字符数）
	CertYearWindow = 200

	// RawFileMD5SetKey 原始文件MD5去重集合的Redis Set键
	RawFileMD5SetKey = "documents:file_md5s"

	// ProfileCacheDuration 档案缓存过期时间
	ProfileCacheDuration = 24 * time.Hour
)
