package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/extractor"
	"cv-agent-go/internal/logger"
	"cv-agent-go/internal/processor"
	"cv-agent-go/internal/storage"
	"cv-agent-go/internal/storage/models"
	"cv-agent-go/internal/types"
	"cv-agent-go/pkg/utils"
)

// DocumentHandler 文档处理器，协调上传与提取流程
type DocumentHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	service *processor.DocumentService
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(cfg *config.Config, st *storage.Storage, service *processor.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		cfg:     cfg,
		storage: st,
		service: service,
	}
}

// DocumentUploadResponse 文档上传响应
type DocumentUploadResponse struct {
	DocumentUUID string `json:"document_uuid"`
	Status       string `json:"status"`
}

// HandleDocumentUpload 处理文档上传请求
// 先做原始文件MD5的快速去重，再校验声明的格式，最后入MinIO并写库、发上传事件
func (h *DocumentHandler) HandleDocumentUpload(ctx context.Context, reader io.Reader, fileSize int64,
	filename, mimeType, userUUID string) (*DocumentUploadResponse, error) {

	// reader只能读一次，先全部读出来算MD5
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	fileMD5Hex := utils.CalculateMD5(fileBytes)

	exists, err := h.storage.Redis.CheckRawFileMD5Exists(ctx, fileMD5Hex)
	if err != nil {
		logger.Error().
			Err(err).
			Str("md5", fileMD5Hex).
			Msg("查询Redis文件MD5集合失败")
		return nil, fmt.Errorf("检查文件MD5重复性失败: %w", err)
	}
	if exists {
		logger.Info().
			Str("md5", fileMD5Hex).
			Str("filename", filename).
			Msg("检测到重复的文件MD5，跳过处理")
		return &DocumentUploadResponse{
			DocumentUUID: "",
			Status:       "DUPLICATE_FILE_SKIPPED",
		}, nil
	}

	// 声明格式不受支持的文件在上传阶段就拒绝
	docType := extractor.DetectType(filename, mimeType)
	if docType == types.DocTypeUnknown {
		return nil, fmt.Errorf("%w: %s", extractor.ErrUnsupportedFormat, filename)
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	documentUUID := uuidV7.String()

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = "." + string(docType)
	}

	storageKey, err := h.storage.MinIO.UploadDocumentFile(ctx, documentUUID, ext, bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, fmt.Errorf("上传文档到对象存储失败: %w", err)
	}

	record := &models.UploadedDocument{
		DocumentUUID: documentUUID,
		UserUUID:     userUUID,
		OriginalName: filename,
		DetectedType: string(docType),
		RawFileMD5:   &fileMD5Hex,
		StorageKey:   storageKey,
		Status:       models.StatusUploaded,
	}
	if err := h.storage.MySQL.CreateUploadedDocument(ctx, record); err != nil {
		return nil, fmt.Errorf("写入文档记录失败: %w", err)
	}

	if err := h.storage.Redis.AddRawFileMD5(ctx, fileMD5Hex); err != nil {
		logger.Warn().Err(err).Str("md5", fileMD5Hex).Msg("登记文件MD5失败")
	}

	// 发布上传事件，消费端异步触发提取
	if h.storage.RabbitMQ != nil {
		msg := storage.DocumentUploadedMessage{
			DocumentUUID:     documentUUID,
			UserUUID:         userUUID,
			OriginalFilename: filename,
			StorageKey:       storageKey,
			RawFileMD5:       fileMD5Hex,
			UploadedAt:       time.Now(),
		}
		if err := h.storage.RabbitMQ.PublishJSON(ctx,
			h.cfg.RabbitMQ.DocumentEventsExchange,
			h.cfg.RabbitMQ.UploadedRoutingKey,
			msg, true); err != nil {
			logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("发布上传事件失败")
		}
	}

	return &DocumentUploadResponse{
		DocumentUUID: documentUUID,
		Status:       models.StatusUploaded,
	}, nil
}

// ProcessDocumentResponse 文档处理响应
type ProcessDocumentResponse struct {
	Profile         *types.CandidateProfile `json:"profile"`
	Recommendations []types.Recommendation  `json:"recommendations"`
}

// HandleProcessDocument 同步触发一份文档的提取流水线
func (h *DocumentHandler) HandleProcessDocument(ctx context.Context, documentUUID string) (*ProcessDocumentResponse, error) {
	result, err := h.service.ProcessDocument(ctx, documentUUID)
	if err != nil {
		return nil, err
	}
	return &ProcessDocumentResponse{
		Profile:         result.Profile,
		Recommendations: result.Recommendations,
	}, nil
}

// HandleGetProfile 查询已提取的档案
func (h *DocumentHandler) HandleGetProfile(ctx context.Context, documentUUID string) (*types.CandidateProfile, error) {
	return h.service.GetProfile(ctx, documentUUID)
}

// HandleGetExtractedText 读取归档的提取文本，未归档时返回空串
func (h *DocumentHandler) HandleGetExtractedText(ctx context.Context, documentUUID string) (string, error) {
	return h.service.GetExtractedText(ctx, documentUUID)
}

// HandleGetDownloadURL 生成原始文档的预签名下载链接
func (h *DocumentHandler) HandleGetDownloadURL(ctx context.Context, documentUUID string) (string, error) {
	return h.service.GetDownloadURL(ctx, documentUUID, 15*time.Minute)
}

// HandleDeleteDocument 删除文档及其派生数据
func (h *DocumentHandler) HandleDeleteDocument(ctx context.Context, documentUUID string) error {
	return h.service.DeleteDocument(ctx, documentUUID)
}

// HandleListPending 查询待处理的文档
func (h *DocumentHandler) HandleListPending(ctx context.Context, limit int) ([]models.UploadedDocument, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return h.storage.MySQL.ListPendingDocuments(ctx, limit)
}

// StartUploadConsumer 启动上传事件消费者，收到消息即跑提取流水线
func (h *DocumentHandler) StartUploadConsumer(ctx context.Context) (chan struct{}, error) {
	if h.storage.RabbitMQ == nil {
		return nil, errors.New("RabbitMQ未初始化")
	}

	prefetch := h.cfg.RabbitMQ.PrefetchCount
	if prefetch <= 0 {
		prefetch = 1
	}

	return h.storage.RabbitMQ.StartConsumer(h.cfg.RabbitMQ.ProcessingQueue, prefetch, func(body []byte) bool {
		var msg storage.DocumentUploadedMessage
		if err := unmarshalMessage(body, &msg); err != nil {
			logger.Error().Err(err).Msg("解析上传事件失败，消息丢弃")
			return true // 无法解析的消息重新入队没有意义
		}

		_, err := h.service.ProcessDocument(ctx, msg.DocumentUUID)
		if err != nil {
			// 门禁类失败是业务终态，ack掉；其余失败重新入队
			if isGatingError(err) {
				logger.Info().
					Err(err).
					Str("document_uuid", msg.DocumentUUID).
					Msg("文档被门禁拒绝")
				return true
			}
			logger.Error().
				Err(err).
				Str("document_uuid", msg.DocumentUUID).
				Msg("处理文档失败，消息重新入队")
			return false
		}
		return true
	})
}

func isGatingError(err error) bool {
	return errors.Is(err, extractor.ErrUnsupportedFormat) ||
		errors.Is(err, extractor.ErrEmptyText) ||
		errors.Is(err, processor.ErrShortDocument) ||
		errors.Is(err, processor.ErrDuplicateDocument) ||
		errors.Is(err, processor.ErrUnsupportedLanguage)
}

func unmarshalMessage(body []byte, v interface{}) error {
	return json.Unmarshal(body, v)
}
