package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/venue_prompt_system/internal/models"
)

// NotificationLogRepository пишет журнал отправленных уведомлений в Postgres
type NotificationLogRepository struct {
	db *pgxpool.Pool
}

func NewNotificationLogRepository(db *pgxpool.Pool) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

// Save сохраняет запись об отправленном уведомлении
func (r *NotificationLogRepository) Save(ctx context.Context, rec *models.NotificationRecord) error {
	query := `
		INSERT INTO notification_log (venue_id, venue_name, category, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, sent_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.VenueID,
		rec.VenueName,
		rec.Category,
		rec.Latitude,
		rec.Longitude,
	).Scan(&rec.ID, &rec.SentAt)
	if err != nil {
		return fmt.Errorf("failed to save notification record: %w", err)
	}
	return nil
}

// List возвращает записи журнала с пагинацией, новые первыми
func (r *NotificationLogRepository) List(ctx context.Context, page, pageSize int) ([]*models.NotificationRecord, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT id, venue_id, venue_name, category, latitude, longitude, sent_at
		FROM notification_log
		ORDER BY sent_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.NotificationRecord, 0)
	for rows.Next() {
		rec := &models.NotificationRecord{}
		err := rows.Scan(
			&rec.ID,
			&rec.VenueID,
			&rec.VenueName,
			&rec.Category,
			&rec.Latitude,
			&rec.Longitude,
			&rec.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
