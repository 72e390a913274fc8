package storage

import "time"

// EventDocumentProcessed 处理完成事件的事件类型，写入发件箱记录
const EventDocumentProcessed = "document.processed"

// DocumentUploadedMessage 文档上传事件
type DocumentUploadedMessage struct {
	DocumentUUID     string    `json:"document_uuid"`
	UserUUID         string    `json:"user_uuid,omitempty"`
	OriginalFilename string    `json:"original_filename"`
	StorageKey       string    `json:"storage_key"` // MinIO中的对象键
	RawFileMD5       string    `json:"raw_file_md5,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// DocumentProcessedMessage 文档处理完成事件
type DocumentProcessedMessage struct {
	DocumentUUID    string `json:"document_uuid"`
	UserUUID        string `json:"user_uuid,omitempty"`
	Status          string `json:"status"`
	Language        string `json:"language,omitempty"`
	AptitudeScore   int    `json:"aptitude_score,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
	TextStorageKey  string `json:"text_storage_key,omitempty"` // 提取文本在MinIO中的对象键
	ProcessedAt     int64  `json:"processed_at,omitempty"`     // Unix时间戳
	Error           string `json:"error,omitempty"`
}
