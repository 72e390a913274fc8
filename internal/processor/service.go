package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/constants"
	"cv-agent-go/internal/extractor"
	"cv-agent-go/internal/storage"
	"cv-agent-go/internal/storage/models"
	"cv-agent-go/internal/types"
	"cv-agent-go/pkg/utils"
)

// DocumentService 文档处理服务
// 串联对象存储、提取流水线和持久化：从MinIO取原始文件，跑流水线，
// 结果连同发件箱消息在同一个事务内落库，最后登记去重哈希
type DocumentService struct {
	storage  *storage.Storage
	pipeline *Pipeline
	mqCfg    *config.RabbitMQConfig
	logger   zerolog.Logger
}

// NewDocumentService 创建文档处理服务
func NewDocumentService(st *storage.Storage, pipeline *Pipeline, mqCfg *config.RabbitMQConfig, logger zerolog.Logger) *DocumentService {
	return &DocumentService{
		storage:  st,
		pipeline: pipeline,
		mqCfg:    mqCfg,
		logger:   logger.With().Str("component", "document_service").Logger(),
	}
}

// ProcessDocument 处理一份已上传的文档
// 门禁失败时更新文档状态为对应的拒绝原因并返回类型化错误
// 持久化失败不影响已算出的档案，档案仍返回给调用方
func (s *DocumentService) ProcessDocument(ctx context.Context, documentUUID string) (*PipelineResult, error) {
	record, err := s.storage.MySQL.GetUploadedDocument(ctx, documentUUID)
	if err != nil {
		return nil, fmt.Errorf("查询文档记录失败: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("文档 %s 不存在", documentUUID)
	}

	if err := s.storage.MySQL.UpdateDocumentStatus(ctx, documentUUID, models.StatusProcessing, nil); err != nil {
		s.logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("更新文档状态失败")
	}

	raw, err := s.storage.MinIO.GetDocumentFile(ctx, record.StorageKey)
	if err != nil {
		detail := err.Error()
		s.storage.MySQL.UpdateDocumentStatus(ctx, documentUUID, models.StatusFailed, &detail)
		return nil, fmt.Errorf("下载文档 %s 失败: %w", documentUUID, err)
	}

	doc := &types.Document{
		UUID:     documentUUID,
		Filename: record.OriginalName,
		Raw:      raw,
	}

	result, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		status, detail := classifyFailure(err)
		s.storage.MySQL.UpdateDocumentStatus(ctx, documentUUID, status, &detail)
		return nil, err
	}

	// 提取文本归档到MinIO，失败不致命
	var textKey *string
	if key, upErr := s.storage.MinIO.UploadExtractedText(ctx, documentUUID, result.Extracted.Text); upErr != nil {
		s.logger.Warn().Err(upErr).Str("document_uuid", documentUUID).Msg("归档提取文本失败")
	} else {
		textKey = &key
	}

	if err := s.persistResult(ctx, record, doc, result, textKey); err != nil {
		// 持久化失败不作废已算出的档案
		s.logger.Error().Err(err).Str("document_uuid", documentUUID).Msg("持久化档案失败")
		return result, nil
	}

	// 整条流水线成功后才登记去重哈希
	if err := s.pipeline.MarkProcessed(ctx, result.Extracted.MD5, documentUUID); err != nil {
		s.logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("登记去重哈希失败")
	}

	s.cacheProfile(ctx, result.Profile)
	return result, nil
}

// classifyFailure 把流水线错误映射到文档状态
func classifyFailure(err error) (status, detail string) {
	detail = err.Error()
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat), errors.Is(err, extractor.ErrEmptyText):
		return models.StatusUnsupportedFormat, detail
	case errors.Is(err, ErrShortDocument):
		return models.StatusTooShort, detail
	case errors.Is(err, ErrDuplicateDocument):
		return models.StatusDuplicate, detail
	case errors.Is(err, ErrUnsupportedLanguage):
		return models.StatusUnsupportedLang, detail
	default:
		return models.StatusFailed, detail
	}
}

// persistResult 档案、建议、文档状态和发件箱消息在同一个事务内写入
func (s *DocumentService) persistResult(ctx context.Context, record *models.UploadedDocument, doc *types.Document, result *PipelineResult, textKey *string) error {
	profile := result.Profile
	now := time.Now()

	profileRecord := &models.CandidateProfileRecord{
		DocumentUUID:    profile.DocumentUUID,
		UserUUID:        record.UserUUID,
		Name:            profile.Contact.Name,
		Email:           profile.Contact.Email,
		Phone:           profile.Contact.Phone,
		Location:        profile.Contact.Location,
		LinkedIn:        profile.Contact.LinkedIn,
		GitHub:          profile.Contact.GitHub,
		Language:        profile.Language,
		TextLength:      profile.TextLength,
		Experience:      utils.ConvertToJSON(profile.Experience),
		Education:       utils.ConvertToJSON(profile.Education),
		Certifications:  utils.ConvertToJSON(profile.Certifications),
		Projects:        utils.ConvertToJSON(profile.Projects),
		Languages:       utils.ConvertToJSON(profile.Languages),
		SkillsByCat:     utils.ConvertToJSON(profile.Skills.Categories),
		OtherSkills:     utils.ConvertToJSON(profile.Skills.Other),
		FlatSkills:      utils.ConvertToJSON(profile.FlatSkills),
		DegradedParts:   utils.ConvertToJSON(profile.Degraded),
		ExperienceYears: profile.ExperienceYears,
		AptitudeScore:   profile.AptitudeScore,
		ExtractorVer:    constants.DefaultExtractorVer,
	}

	recRecords := make([]models.RecommendationRecord, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recRecords = append(recRecords, models.RecommendationRecord{
			DocumentUUID: profile.DocumentUUID,
			UserUUID:     record.UserUUID,
			Text:         rec.Text,
			Priority:     string(rec.Priority),
			GeneratedAt:  rec.GeneratedAt,
		})
	}

	eventPayload, err := json.Marshal(storage.DocumentProcessedMessage{
		DocumentUUID:    profile.DocumentUUID,
		UserUUID:        record.UserUUID,
		Status:          models.StatusProcessed,
		Language:        profile.Language,
		AptitudeScore:   profile.AptitudeScore,
		ExperienceYears: profile.ExperienceYears,
		ProcessedAt:     now.Unix(),
	})
	if err != nil {
		return fmt.Errorf("序列化处理完成事件失败: %w", err)
	}

	return s.storage.MySQL.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.storage.MySQL.SaveCandidateProfile(tx, profileRecord); err != nil {
			return err
		}
		if err := s.storage.MySQL.SaveRecommendations(tx, recRecords); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":        models.StatusProcessed,
			"detected_type": string(doc.Type),
			"text_md5":      result.Extracted.MD5,
			"language":      result.Extracted.Language,
			"processed_at":  &now,
		}
		if textKey != nil {
			updates["text_storage_key"] = *textKey
		}
		if err := s.storage.MySQL.UpdateDocumentFields(ctx, tx, profile.DocumentUUID, updates); err != nil {
			return err
		}

		outboxMsg := &models.OutboxMessage{
			AggregateUUID: profile.DocumentUUID,
			EventType:     storage.EventDocumentProcessed,
			Exchange:      s.mqCfg.DocumentEventsExchange,
			RoutingKey:    s.mqCfg.ProcessedRoutingKey,
			Payload:       string(eventPayload),
			Status:        models.OutboxStatusPending,
		}
		return s.storage.MySQL.CreateOutboxMessage(tx, outboxMsg)
	})
}

// cacheProfile 档案JSON写入Redis缓存，失败只记日志
func (s *DocumentService) cacheProfile(ctx context.Context, profile *types.CandidateProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.storage.Redis.CacheProfileJSON(ctx, profile.DocumentUUID, string(data)); err != nil {
		s.logger.Warn().Err(err).Str("document_uuid", profile.DocumentUUID).Msg("缓存档案失败")
	}
}

// GetExtractedText 读取已归档的提取文本
// 文档不存在或文本未归档时返回空串
func (s *DocumentService) GetExtractedText(ctx context.Context, documentUUID string) (string, error) {
	record, err := s.storage.MySQL.GetUploadedDocument(ctx, documentUUID)
	if err != nil {
		return "", err
	}
	if record == nil || record.TextStorageKey == nil {
		return "", nil
	}
	return s.storage.MinIO.GetExtractedText(ctx, *record.TextStorageKey)
}

// GetDownloadURL 生成原始文档的预签名下载链接
func (s *DocumentService) GetDownloadURL(ctx context.Context, documentUUID string, expiry time.Duration) (string, error) {
	record, err := s.storage.MySQL.GetUploadedDocument(ctx, documentUUID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", nil
	}
	return s.storage.MinIO.GetPresignedURL(ctx, record.StorageKey, expiry)
}

// DeleteDocument 删除文档及其全部派生数据
// 对象存储的删除失败只记日志，数据库记录与缓存仍然清理
func (s *DocumentService) DeleteDocument(ctx context.Context, documentUUID string) error {
	record, err := s.storage.MySQL.GetUploadedDocument(ctx, documentUUID)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("文档 %s 不存在", documentUUID)
	}

	if err := s.storage.MinIO.DeleteFile(ctx, record.StorageKey); err != nil {
		s.logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("删除原始文档对象失败")
	}
	if record.TextStorageKey != nil {
		if err := s.storage.MinIO.DeleteExtractedText(ctx, *record.TextStorageKey); err != nil {
			s.logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("删除提取文本对象失败")
		}
	}

	if err := s.storage.MySQL.DeleteDocumentData(ctx, documentUUID); err != nil {
		return fmt.Errorf("删除文档 %s 的数据库记录失败: %w", documentUUID, err)
	}

	if s.storage.Redis != nil {
		if err := s.storage.Redis.DeleteCachedProfile(ctx, documentUUID); err != nil {
			s.logger.Warn().Err(err).Str("document_uuid", documentUUID).Msg("删除档案缓存失败")
		}
	}
	return nil
}

// GetProfile 查询档案，优先走Redis缓存
func (s *DocumentService) GetProfile(ctx context.Context, documentUUID string) (*types.CandidateProfile, error) {
	if cached, err := s.storage.Redis.GetCachedProfileJSON(ctx, documentUUID); err == nil && cached != "" {
		var profile types.CandidateProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
	}

	record, err := s.storage.MySQL.GetCandidateProfile(ctx, documentUUID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return profileFromRecord(record), nil
}

// profileFromRecord 数据库记录还原成档案结构
func profileFromRecord(record *models.CandidateProfileRecord) *types.CandidateProfile {
	profile := &types.CandidateProfile{
		DocumentUUID: record.DocumentUUID,
		Language:     record.Language,
		TextLength:   record.TextLength,
		Contact: types.ContactInfo{
			Name:     record.Name,
			Email:    record.Email,
			Phone:    record.Phone,
			Location: record.Location,
			LinkedIn: record.LinkedIn,
			GitHub:   record.GitHub,
		},
		ExperienceYears: record.ExperienceYears,
		AptitudeScore:   record.AptitudeScore,
	}

	json.Unmarshal(record.Experience, &profile.Experience)
	json.Unmarshal(record.Education, &profile.Education)
	json.Unmarshal(record.Certifications, &profile.Certifications)
	json.Unmarshal(record.Projects, &profile.Projects)
	json.Unmarshal(record.Languages, &profile.Languages)
	json.Unmarshal(record.SkillsByCat, &profile.Skills.Categories)
	json.Unmarshal(record.OtherSkills, &profile.Skills.Other)
	json.Unmarshal(record.FlatSkills, &profile.FlatSkills)
	json.Unmarshal(record.DegradedParts, &profile.Degraded)

	return profile
}
