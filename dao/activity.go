package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type ActivityLogDAO struct {
	Repo[models.ActivityLog]
}

func NewActivityLogDAO(db *gorm.DB) *ActivityLogDAO {
	return &ActivityLogDAO{Repo: NewRepo[models.ActivityLog](db)}
}

// GetByID 查询审计条目，未命中返回 nil
func (d *ActivityLogDAO) GetByID(ctx context.Context, logID uint64) (*models.ActivityLog, error) {
	var item models.ActivityLog
	err := d.Db.WithContext(ctx).Where("id = ?", logID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByUser 查询用户的审计流水（倒序翻页）
func (d *ActivityLogDAO) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.ActivityLog, error) {
	var logs []*models.ActivityLog
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// UpdateStatusByIDs 批量翻转条目状态，条目本身不删除
func (d *ActivityLogDAO) UpdateStatusByIDs(ctx context.Context, logIDs []uint64, status int8) error {
	if len(logIDs) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("id IN ?", logIDs).
		Update("status", status).Error
}
