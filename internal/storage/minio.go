package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"

	"cv-agent-go/internal/config"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error)
	DownloadFile(ctx context.Context, objectName string) ([]byte, error)
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	DeleteFile(ctx context.Context, objectName string) error

	// 文档特定操作
	UploadDocumentFile(ctx context.Context, documentUUID, fileExt string, reader io.Reader, fileSize int64) (string, error)
	UploadExtractedText(ctx context.Context, documentUUID string, text string) (string, error)
	GetDocumentFile(ctx context.Context, objectKey string) ([]byte, error)
	GetExtractedText(ctx context.Context, objectKey string) (string, error)
	DeleteExtractedText(ctx context.Context, objectKey string) error
}

var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
// 两个存储桶：原始文档与提取文本，各自可配置生命周期
type MinIO struct {
	client          *minio.Client
	cfg             *config.MinIOConfig
	originalsBucket string
	extractedBucket string
	logger          *log.Logger
}

// NewMinIO 创建MinIO客户端并确保存储桶存在
func NewMinIO(cfg *config.MinIOConfig, logger *log.Logger) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	originalsBucket := cfg.OriginalsBucket
	if originalsBucket == "" {
		originalsBucket = "cv-originals"
	}
	extractedBucket := cfg.ExtractedTextBucket
	if extractedBucket == "" {
		extractedBucket = "cv-extracted-text"
	}

	m := &MinIO{
		client:          client,
		cfg:             cfg,
		originalsBucket: originalsBucket,
		extractedBucket: extractedBucket,
		logger:          logger,
	}

	if err := m.ensureBucketExists(originalsBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保原始文档存储桶 %s 存在失败: %w", originalsBucket, err)
	}
	if err := m.ensureBucketExists(extractedBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保提取文本存储桶 %s 存在失败: %w", extractedBucket, err)
	}

	if cfg.OriginalFileExpireDays > 0 || cfg.ExtractedTextExpireDays > 0 {
		if err := m.setupLifecycleRules(context.Background()); err != nil {
			logger.Printf("[MinIO] Warning: Failed to set up lifecycle rules: %v", err)
		}
	}

	return m, nil
}

func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在失败: %w", bucketName, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
	}
	return nil
}

func (m *MinIO) setupLifecycleRules(ctx context.Context) error {
	if m.cfg.OriginalFileExpireDays > 0 {
		if err := m.setupBucketLifecycle(ctx, m.originalsBucket, "expire-originals", m.cfg.OriginalFileExpireDays); err != nil {
			return fmt.Errorf("为原始文档存储桶 %s 设置生命周期失败: %w", m.originalsBucket, err)
		}
	}
	if m.cfg.ExtractedTextExpireDays > 0 {
		if err := m.setupBucketLifecycle(ctx, m.extractedBucket, "expire-extracted-text", m.cfg.ExtractedTextExpireDays); err != nil {
			return fmt.Errorf("为提取文本存储桶 %s 设置生命周期失败: %w", m.extractedBucket, err)
		}
	}
	return nil
}

func (m *MinIO) setupBucketLifecycle(ctx context.Context, bucketName, ruleID string, expiryDays int) error {
	lcCfg := lifecycle.NewConfiguration()
	lcCfg.Rules = []lifecycle.Rule{
		{
			ID:     ruleID,
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(expiryDays),
			},
		},
	}
	return m.client.SetBucketLifecycle(ctx, bucketName, lcCfg)
}

// UploadFile 上传文件，objectName可携带"bucket/key"形式的桶前缀
func (m *MinIO) UploadFile(ctx context.Context, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error) {
	bucketToUse := m.originalsBucket
	actualObjectName := objectName
	if strings.Contains(objectName, "/") {
		parts := strings.SplitN(objectName, "/", 2)
		if len(parts) == 2 && (parts[0] == m.originalsBucket || parts[0] == m.extractedBucket) {
			bucketToUse = parts[0]
			actualObjectName = parts[1]
		}
	}

	_, err := m.client.PutObject(ctx, bucketToUse, actualObjectName, reader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传对象 %s/%s 失败: %w", bucketToUse, actualObjectName, err)
	}
	return actualObjectName, nil
}

// UploadDocumentFile 上传原始文档到originalsBucket，返回对象键
func (m *MinIO) UploadDocumentFile(ctx context.Context, documentUUID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	objectName := fmt.Sprintf("document/%s/original%s", documentUUID, fileExt)
	contentType := getContentType(fileExt)
	return m.UploadFile(ctx, objectName, reader, fileSize, contentType)
}

// UploadExtractedText 上传提取出的文本到extractedBucket
func (m *MinIO) UploadExtractedText(ctx context.Context, documentUUID string, text string) (string, error) {
	objectName := fmt.Sprintf("document/%s/extracted_text.txt", documentUUID)
	_, err := m.client.PutObject(ctx, m.extractedBucket, objectName, strings.NewReader(text), int64(len(text)), minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return "", fmt.Errorf("上传提取文本 %s 到存储桶 %s 失败: %w", objectName, m.extractedBucket, err)
	}
	return objectName, nil
}

// DownloadFile 从originalsBucket下载对象
func (m *MinIO) DownloadFile(ctx context.Context, objectName string) ([]byte, error) {
	return m.downloadFromBucket(ctx, m.originalsBucket, objectName)
}

func (m *MinIO) downloadFromBucket(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("获取对象 %s/%s 失败: %w", bucketName, objectName, err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		return nil, fmt.Errorf("读取对象 %s/%s 内容失败: %w", bucketName, objectName, err)
	}
	return buf.Bytes(), nil
}

// GetDocumentFile 读取原始文档字节
func (m *MinIO) GetDocumentFile(ctx context.Context, objectKey string) ([]byte, error) {
	return m.downloadFromBucket(ctx, m.originalsBucket, objectKey)
}

// GetExtractedText 读取已保存的提取文本
func (m *MinIO) GetExtractedText(ctx context.Context, objectKey string) (string, error) {
	data, err := m.downloadFromBucket(ctx, m.extractedBucket, objectKey)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetPresignedURL 生成原始文档的预签名下载URL
func (m *MinIO) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.originalsBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return u.String(), nil
}

// DeleteFile 删除原始文档对象
func (m *MinIO) DeleteFile(ctx context.Context, objectName string) error {
	return m.client.RemoveObject(ctx, m.originalsBucket, objectName, minio.RemoveObjectOptions{})
}

// DeleteExtractedText 删除归档的提取文本对象
func (m *MinIO) DeleteExtractedText(ctx context.Context, objectKey string) error {
	return m.client.RemoveObject(ctx, m.extractedBucket, objectKey, minio.RemoveObjectOptions{})
}

func getContentType(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
