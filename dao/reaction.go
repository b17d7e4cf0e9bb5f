package dao

import (
	"context"
	"errors"

	"Inkwell/models"

	"gorm.io/gorm"
)

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// GetByUserTarget 查询指定用户对指定目标的反应记录，未命中返回 nil
func (d *ReactionDAO) GetByUserTarget(ctx context.Context, userID uint64, targetKind string, targetID uint64) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, targetKind, targetID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// UpdateKind 改写反应类型（like <-> dislike）
func (d *ReactionDAO) UpdateKind(ctx context.Context, reactionID uint64, kind string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("id = ?", reactionID).
		Update("kind", kind).Error
}

// DeleteByID 删除反应记录（取消点赞/点踩）
func (d *ReactionDAO) DeleteByID(ctx context.Context, reactionID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", reactionID).
		Delete(&models.Reaction{}).Error
}

// CountByTarget 全量重算目标的 like/dislike 数
// 刻意不走增量，以 reactions 表为唯一事实来源
func (d *ReactionDAO) CountByTarget(ctx context.Context, targetKind string, targetID uint64) (likes int64, dislikes int64, err error) {
	type kindCount struct {
		Kind  string `gorm:"column:kind"`
		Total int64  `gorm:"column:total"`
	}

	var rows []kindCount
	err = d.Db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("kind, COUNT(*) AS total").
		Where("target_kind = ? AND target_id = ?", targetKind, targetID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		switch row.Kind {
		case models.ReactionLike:
			likes = row.Total
		case models.ReactionDislike:
			dislikes = row.Total
		}
	}
	return likes, dislikes, nil
}
