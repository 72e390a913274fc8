package models

import (
	"time"

	"gorm.io/datatypes"
)

// 文档处理状态常量
const (
	StatusUploaded          = "UPLOADED"
	StatusProcessing        = "PROCESSING"
	StatusProcessed         = "PROCESSED"
	StatusDuplicate         = "REJECTED_DUPLICATE"
	StatusUnsupportedFormat = "REJECTED_FORMAT"
	StatusUnsupportedLang   = "REJECTED_LANGUAGE"
	StatusTooShort          = "REJECTED_TOO_SHORT"
	StatusFailed            = "FAILED"
)

// UploadedDocument 上传的文档记录
type UploadedDocument struct {
	DocumentUUID   string     `gorm:"primaryKey;type:varchar(36)"`
	UserUUID       string     `gorm:"type:varchar(36);index"`
	OriginalName   string     `gorm:"type:varchar(255)"`
	DetectedType   string     `gorm:"type:varchar(16)"`
	RawFileMD5     *string    `gorm:"type:varchar(32);index"`
	TextMD5        *string    `gorm:"type:varchar(32);index"`
	StorageKey     string     `gorm:"type:varchar(512)"` // MinIO对象键
	TextStorageKey *string    `gorm:"type:varchar(512)"` // 提取文本的MinIO对象键
	Status         string     `gorm:"type:varchar(32);index;default:UPLOADED"`
	StatusDetail   *string    `gorm:"type:varchar(512)"`
	Language       *string    `gorm:"type:varchar(16)"`
	ProcessedAt    *time.Time `gorm:""`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (UploadedDocument) TableName() string {
	return "uploaded_documents"
}

// CandidateProfileRecord 提取出的候选人档案
// 结构化章节以JSON列存储，常用筛选字段单独建列
type CandidateProfileRecord struct {
	ID              uint           `gorm:"primaryKey;autoIncrement"`
	DocumentUUID    string         `gorm:"type:varchar(36);uniqueIndex"`
	UserUUID        string         `gorm:"type:varchar(36);index"`
	Name            string         `gorm:"type:varchar(255)"`
	Email           string         `gorm:"type:varchar(255);index"`
	Phone           string         `gorm:"type:varchar(64)"`
	Location        string         `gorm:"type:varchar(255)"`
	LinkedIn        string         `gorm:"type:varchar(255)"`
	GitHub          string         `gorm:"type:varchar(255)"`
	Language        string         `gorm:"type:varchar(16)"`
	TextLength      int            `gorm:""`
	Experience      datatypes.JSON `gorm:"type:json"`
	Education       datatypes.JSON `gorm:"type:json"`
	Certifications  datatypes.JSON `gorm:"type:json"`
	Projects        datatypes.JSON `gorm:"type:json"`
	Languages       datatypes.JSON `gorm:"type:json"`
	SkillsByCat     datatypes.JSON `gorm:"type:json"`
	OtherSkills     datatypes.JSON `gorm:"type:json"`
	FlatSkills      datatypes.JSON `gorm:"type:json"`
	DegradedParts   datatypes.JSON `gorm:"type:json"`
	ExperienceYears int            `gorm:"index"`
	AptitudeScore   int            `gorm:"index"`
	ExtractorVer    string         `gorm:"type:varchar(32)"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (CandidateProfileRecord) TableName() string {
	return "candidate_profiles"
}

// RecommendationRecord 针对档案生成的建议
type RecommendationRecord struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	DocumentUUID string    `gorm:"type:varchar(36);index"`
	UserUUID     string    `gorm:"type:varchar(36);index"`
	Text         string    `gorm:"type:text"`
	Priority     string    `gorm:"type:varchar(16)"`
	GeneratedAt  time.Time `gorm:""`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName 指定表名
func (RecommendationRecord) TableName() string {
	return "profile_recommendations"
}

// OutboxMessage 事务性发件箱消息
// 与业务数据同事务写入，由中继进程投递到RabbitMQ
type OutboxMessage struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	AggregateUUID string     `gorm:"type:varchar(36);index"`
	EventType     string     `gorm:"type:varchar(64)"`
	Exchange      string     `gorm:"type:varchar(128)"`
	RoutingKey    string     `gorm:"type:varchar(128)"`
	Payload       string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(16);index;default:PENDING"`
	RetryCount    int        `gorm:"default:0"`
	LastError     *string    `gorm:"type:varchar(512)"`
	SentAt        *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (OutboxMessage) TableName() string {
	return "outbox_messages"
}

// 发件箱消息状态
const (
	OutboxStatusPending = "PENDING"
	OutboxStatusSent    = "SENT"
	OutboxStatusFailed  = "FAILED"
)
