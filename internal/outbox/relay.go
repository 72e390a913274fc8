package outbox

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cv-agent-go/internal/storage"
	"cv-agent-go/internal/storage/models"
)

const (
	defaultPollingInterval = 5 * time.Second
	defaultBatchSize       = 10
	maxRetryCount          = 5
)

// MessageRelay 轮询发件箱表并把消息投递到消息代理
// 业务数据与消息在同一个事务内写入，投递由本中继异步完成
type MessageRelay struct {
	db              *gorm.DB
	publisher       *storage.RabbitMQ
	logger          *log.Logger
	pollingInterval time.Duration
	batchSize       int
	done            chan struct{}
}

// NewMessageRelay 创建消息中继
func NewMessageRelay(db *gorm.DB, publisher *storage.RabbitMQ, logger *log.Logger) *MessageRelay {
	return &MessageRelay{
		db:              db,
		publisher:       publisher,
		logger:          logger,
		pollingInterval: defaultPollingInterval,
		batchSize:       defaultBatchSize,
		done:            make(chan struct{}),
	}
}

// Start 启动后台轮询
func (r *MessageRelay) Start() {
	r.logger.Println("MessageRelay starting...")
	ticker := time.NewTicker(r.pollingInterval)

	go func() {
		for {
			select {
			case <-r.done:
				ticker.Stop()
				r.logger.Println("MessageRelay stopped.")
				return
			case <-ticker.C:
				if err := r.processPendingMessages(context.Background()); err != nil {
					r.logger.Printf("Error processing pending messages: %v", err)
				}
			}
		}
	}()
}

// Stop 优雅停止
func (r *MessageRelay) Stop() {
	close(r.done)
}

// processPendingMessages 取出一批待投递消息并逐条发布
// FOR UPDATE SKIP LOCKED 让多实例水平扩展时不会抢到同一批消息
func (r *MessageRelay) processPendingMessages(ctx context.Context) error {
	var messages []models.OutboxMessage

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", models.OutboxStatusPending).
		Order("created_at asc").
		Limit(r.batchSize).
		Find(&messages).Error
	if err != nil {
		r.logger.Printf("Failed to fetch pending outbox messages: %v", err)
		return err
	}

	if len(messages) == 0 {
		return tx.Commit().Error
	}

	for _, msg := range messages {
		err := r.publisher.PublishMessage(
			ctx,
			msg.Exchange,
			msg.RoutingKey,
			[]byte(msg.Payload),
			true, // 持久化投递
		)

		if err != nil {
			r.logger.Printf("Failed to publish message ID %d (AggregateUUID: %s): %v. Retries: %d",
				msg.ID, msg.AggregateUUID, err, msg.RetryCount+1)
			msg.RetryCount++
			errStr := err.Error()
			msg.LastError = &errStr
			if msg.RetryCount >= maxRetryCount {
				msg.Status = models.OutboxStatusFailed
			}
		} else {
			msg.Status = models.OutboxStatusSent
			now := time.Now()
			msg.SentAt = &now
			msg.LastError = nil
		}

		// 更新失败会回滚整个事务，这批消息下一轮重新拾取
		if err := tx.Save(&msg).Error; err != nil {
			r.logger.Printf("Failed to update outbox message ID %d: %v", msg.ID, err)
			return err
		}
	}

	return tx.Commit().Error
}
