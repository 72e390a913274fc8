package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"cv-agent-go/internal/config"
	"cv-agent-go/internal/storage/models"
)

// MySQL 关系型数据库适配器
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL 创建MySQL连接并自动迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	// 构建DSN，附带超时设置
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds)

	var logLevel logger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = logger.Silent
	case 2:
		logLevel = logger.Error
	case 3:
		logLevel = logger.Warn
	case 4:
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logLevel),
		PrepareStmt:                              true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute)

	m := &MySQL{
		db:  db,
		cfg: cfg,
	}

	if err := m.autoMigrateSchema(); err != nil {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("自动迁移数据库结构失败: %w", err)
	}

	log.Println("成功连接到MySQL并自动迁移数据库结构")
	return m, nil
}

func (m *MySQL) autoMigrateSchema() error {
	return m.db.AutoMigrate(
		&models.UploadedDocument{},
		&models.CandidateProfileRecord{},
		&models.RecommendationRecord{},
		&models.OutboxMessage{},
	)
}

// DB 返回底层的gorm.DB，供需要手动组织事务的调用方使用
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateUploadedDocument 写入文档上传记录
func (m *MySQL) CreateUploadedDocument(ctx context.Context, doc *models.UploadedDocument) error {
	return m.db.WithContext(ctx).Create(doc).Error
}

// GetUploadedDocument 按UUID查询文档记录
func (m *MySQL) GetUploadedDocument(ctx context.Context, documentUUID string) (*models.UploadedDocument, error) {
	var doc models.UploadedDocument
	err := m.db.WithContext(ctx).Where("document_uuid = ?", documentUUID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDocumentStatus 更新文档处理状态及附加信息
func (m *MySQL) UpdateDocumentStatus(ctx context.Context, documentUUID, status string, detail *string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if detail != nil {
		updates["status_detail"] = *detail
	}
	if status == models.StatusProcessed {
		now := time.Now()
		updates["processed_at"] = &now
	}
	return m.db.WithContext(ctx).
		Model(&models.UploadedDocument{}).
		Where("document_uuid = ?", documentUUID).
		Updates(updates).Error
}

// UpdateDocumentFields 更新文档记录的任意字段
func (m *MySQL) UpdateDocumentFields(ctx context.Context, tx *gorm.DB, documentUUID string, updates map[string]interface{}) error {
	db := m.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.UploadedDocument{}).
		Where("document_uuid = ?", documentUUID).
		Updates(updates).Error
}

// ListPendingDocuments 按状态查询待处理的文档
func (m *MySQL) ListPendingDocuments(ctx context.Context, limit int) ([]models.UploadedDocument, error) {
	var docs []models.UploadedDocument
	err := m.db.WithContext(ctx).
		Where("status = ?", models.StatusUploaded).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

// SaveCandidateProfile 写入或更新档案记录，按文档UUID幂等
func (m *MySQL) SaveCandidateProfile(tx *gorm.DB, record *models.CandidateProfileRecord) error {
	db := m.db
	if tx != nil {
		db = tx
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_uuid"}},
		UpdateAll: true,
	}).Create(record).Error
}

// GetCandidateProfile 按文档UUID查询档案
func (m *MySQL) GetCandidateProfile(ctx context.Context, documentUUID string) (*models.CandidateProfileRecord, error) {
	var record models.CandidateProfileRecord
	err := m.db.WithContext(ctx).Where("document_uuid = ?", documentUUID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SaveRecommendations 批量写入建议记录
func (m *MySQL) SaveRecommendations(tx *gorm.DB, recs []models.RecommendationRecord) error {
	if len(recs) == 0 {
		return nil
	}
	db := m.db
	if tx != nil {
		db = tx
	}
	return db.Create(&recs).Error
}

// CreateOutboxMessage 在事务内写入发件箱消息
func (m *MySQL) CreateOutboxMessage(tx *gorm.DB, msg *models.OutboxMessage) error {
	db := m.db
	if tx != nil {
		db = tx
	}
	return db.Create(msg).Error
}

// DeleteDocumentData 删除文档及其全部派生记录（档案、建议）
// 发件箱消息保留，已投递的事件不因删除而消失
func (m *MySQL) DeleteDocumentData(ctx context.Context, documentUUID string) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_uuid = ?", documentUUID).
			Delete(&models.RecommendationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_uuid = ?", documentUUID).
			Delete(&models.CandidateProfileRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("document_uuid = ?", documentUUID).
			Delete(&models.UploadedDocument{}).Error
	})
}
