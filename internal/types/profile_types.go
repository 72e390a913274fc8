package types

import "time"

// DocumentType 表示识别出的文档格式
type DocumentType string

const (
	// DocTypePDF PDF文档
	DocTypePDF DocumentType = "pdf"
	// DocTypeDOCX Word文档
	DocTypeDOCX DocumentType = "docx"
	// DocTypeXLSX 电子表格文档
	DocTypeXLSX DocumentType = "xlsx"
	// DocTypeTXT 纯文本文档
	DocTypeTXT DocumentType = "txt"
	// DocTypeUnknown 未识别的文档类型
	DocTypeUnknown DocumentType = "unknown"
)

// 字段缺失时使用的哨兵值，绝不返回空串或nil
const (
	// SentinelNotFound 字段未匹配到任何内容
	SentinelNotFound = "not found"
	// SentinelNotDetected 启发式未能识别出字段
	SentinelNotDetected = "not detected"
	// SentinelNotSpecified 结构化条目中的子字段缺失
	SentinelNotSpecified = "not specified"
	// SentinelProcessingError 某个章节提取器失败后的降级标记
	SentinelProcessingError = "error in processing"
)

// Document 上传的原始文档，提取完成后即丢弃
type Document struct {
	UUID     string       // 文档UUID
	Filename string       // 声明的文件名
	MimeType string       // 声明的MIME类型（可选）
	Raw      []byte       // 原始字节
	Type     DocumentType // 检测出的文档类型
}

// ExtractedText 解码后的文本及其派生属性，创建后不再修改
type ExtractedText struct {
	Text     string // 提取出的完整文本
	Length   int    // 文本长度（字符数）
	MD5      string // 文本内容的MD5，用于去重
	Language string // 检测出的语言代码: es/en/unknown/其他
}

// ContactInfo 联系方式，各字段相互独立，缺失时填哨兵值
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ExperienceEntry 一段工作经历
type ExperienceEntry struct {
	Company string   `json:"company"`           // 公司名，缺失时为 not specified
	Title   string   `json:"title"`             // 职位名，缺失时为 not specified
	Dates   []string `json:"dates"`             // 日期token，最多保留前两个
	Snippet string   `json:"snippet,omitempty"` // 片段文本，最长200字符
}

// EducationEntry 一条教育经历
// 三个字段来自三个独立的全局匹配列表，按下标配对（已知的脆弱设计，见parser包）
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"graduation_year"`
}

// CertCategory 证书类别
type CertCategory string

const (
	// CertTechnical 技术类证书
	CertTechnical CertCategory = "technical"
	// CertProfessional 职业类证书
	CertProfessional CertCategory = "professional"
)

// Certification 一条证书记录
type Certification struct {
	Name     string       `json:"name"`
	Year     string       `json:"year,omitempty"` // 可选的4位年份
	Category CertCategory `json:"category"`
}

// Project 一条项目经历
type Project struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`      // 已去重的技术关键词
	Snippet      string   `json:"snippet,omitempty"` // 片段文本，最长150字符
}

// LanguageSkill 一条语言能力记录
type LanguageSkill struct {
	Language      string `json:"language"`
	Level         string `json:"level"`
	Certification string `json:"certification"` // 英语为TOEFL，其余为unspecified
}

// SkillCategory 技能分类枚举，固定14个类别
// 用枚举而不是自由的map key，避免意外引入未知类别
type SkillCategory string

const (
	CatProgrammingLanguages SkillCategory = "programming_languages"
	CatFrameworks           SkillCategory = "frameworks"
	CatDatabases            SkillCategory = "databases"
	CatTools                SkillCategory = "tools"
	CatMethodologies        SkillCategory = "methodologies"
	CatCloudPlatforms       SkillCategory = "cloud_platforms"
	CatSoftSkills           SkillCategory = "soft_skills"
	CatEducation            SkillCategory = "education"
	CatAdministration       SkillCategory = "administration"
	CatHealth               SkillCategory = "health"
	CatLanguages            SkillCategory = "languages"
	CatArtsCommunication    SkillCategory = "arts_communication"
	CatSciences             SkillCategory = "sciences"
	CatEngineering          SkillCategory = "engineering"
)

// AllSkillCategories 全部技能类别，顺序固定
var AllSkillCategories = []SkillCategory{
	CatProgrammingLanguages,
	CatFrameworks,
	CatDatabases,
	CatTools,
	CatMethodologies,
	CatCloudPlatforms,
	CatSoftSkills,
	CatEducation,
	CatAdministration,
	CatHealth,
	CatLanguages,
	CatArtsCommunication,
	CatSciences,
	CatEngineering,
}

// SkillsTaxonomy 技能归类结果
type SkillsTaxonomy struct {
	Categories map[SkillCategory][]string `json:"categories"`   // 类别 -> 匹配到的规范词
	Other      []string                   `json:"other_skills"` // 发现的候选新技能（高误报率启发式）
}

// TotalSkillCount 各类别技能词的总数
func (t *SkillsTaxonomy) TotalSkillCount() int {
	total := 0
	for _, terms := range t.Categories {
		total += len(terms)
	}
	return total
}

// AllTerms 按类别固定顺序展开全部已归类的技能词
func (t *SkillsTaxonomy) AllTerms() []string {
	var out []string
	for _, cat := range AllSkillCategories {
		out = append(out, t.Categories[cat]...)
	}
	return out
}

// CandidateProfile 提取流水线的最终产物
type CandidateProfile struct {
	DocumentUUID    string            `json:"document_uuid"`
	Language        string            `json:"language"`
	TextLength      int               `json:"text_length"`
	Contact         ContactInfo       `json:"contact"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Certifications  []Certification   `json:"certifications"`
	Projects        []Project         `json:"projects"`
	Languages       []LanguageSkill   `json:"languages"`
	Skills          SkillsTaxonomy    `json:"skills"`
	FlatSkills      []string          `json:"flat_skills"` // 兼容旧版的扁平技能列表
	ExperienceYears int               `json:"experience_years"`
	AptitudeScore   int               `json:"aptitude_score"`
	// Degraded 记录提取过程中失败降级的章节名
	// 使调用方可以区分"没有数据"和"提取降级"
	Degraded []string `json:"degraded,omitempty"`
}

// RecommendationPriority 建议的优先级标签
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Recommendation 针对候选人档案生成的改进建议
type Recommendation struct {
	Text        string                 `json:"text"`
	Priority    RecommendationPriority `json:"priority"`
	GeneratedAt time.Time              `json:"generated_at"`
}
