package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/goto/salt/audit"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/goto/discuss/domain"
)

type auditLogModel struct {
	ID        uint `gorm:"primaryKey"`
	Timestamp time.Time
	Action    string
	Actor     string
	Data      datatypes.JSON
}

func (auditLogModel) TableName() string {
	return "audit_logs"
}

func (m *auditLogModel) fromDomain(l *audit.Log) error {
	if l == nil {
		return errors.New("audit log is nil")
	}
	m.Timestamp = l.Timestamp
	m.Action = l.Action
	m.Actor = l.Actor
	if l.Data != nil {
		data, err := json.Marshal(l.Data)
		if err != nil {
			return err
		}
		m.Data = datatypes.JSON(data)
	}
	return nil
}

func (m *auditLogModel) toDomain() (*audit.Log, error) {
	l := &audit.Log{
		Timestamp: m.Timestamp,
		Action:    m.Action,
		Actor:     m.Actor,
	}
	if len(m.Data) > 0 {
		data := make(map[string]interface{})
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, err
		}
		l.Data = data
	}
	return l, nil
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Insert(ctx context.Context, l *audit.Log) error {
	m := &auditLogModel{}
	if err := m.fromDomain(l); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AuditLogRepository) List(ctx context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	db := r.db.WithContext(ctx)

	if filter != nil {
		if filter.Actions != nil {
			db = db.Where(`"action" IN ?`, filter.Actions)
		}
		if filter.CommentID != "" {
			db = db.Where(`("data" ->> 'comment_id' = ? OR "data" ->> 'id' = ?)`, filter.CommentID, filter.CommentID)
		}
		if filter.Actor != "" {
			db = db.Where(`"actor" = ?`, filter.Actor)
		}
		if filter.Size > 0 {
			db = db.Limit(filter.Size)
		}
	}
	db = db.Order("timestamp DESC")

	records := []*auditLogModel{}
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}

	logs := make([]*audit.Log, 0, len(records))
	for _, record := range records {
		l, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}
