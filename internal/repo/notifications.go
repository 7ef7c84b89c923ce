package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type NotificationRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *NotificationRepo) SaveNotification(ctx context.Context, n entities.Notification) error {
	var meta []byte
	if len(n.Meta) > 0 {
		var err error
		meta, err = json.Marshal(n.Meta)
		if err != nil {
			return fmt.Errorf("failed to marshal notification meta: %w", err)
		}
	}

	query, args := r.qb.Insert("notifications").
		Columns("notification_id", "user_id", "type", "title", "message", "action_url", "meta", "read", "created_at").
		Values(n.ID, n.UserID, string(n.Type), n.Title, n.Message, nullString(n.ActionURL), meta, n.Read, n.CreatedAt).
		Suffix("ON CONFLICT (notification_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) NotificationsByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	query, args := r.qb.Select("notification_id", "user_id", "type", "title", "message", "action_url", "meta", "read", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []Notification
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		notification, err := NotificationToEntity(row)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification %s: %w", row.NotificationID, err)
		}
		result = append(result, notification)
	}
	return result, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	query, args := r.qb.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"notification_id": notificationID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *NotificationRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
