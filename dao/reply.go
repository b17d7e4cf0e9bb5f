package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type ReplyDAO struct {
	Repo[models.Reply]
}

func NewReplyDAO(db *gorm.DB) *ReplyDAO {
	return &ReplyDAO{Repo: NewRepo[models.Reply](db)}
}

// GetByID 查询回复，未命中返回 nil
func (d *ReplyDAO) GetByID(ctx context.Context, replyID uint64) (*models.Reply, error) {
	var item models.Reply
	err := d.Db.WithContext(ctx).Where("id = ?", replyID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// FindByCommentID 查询评论下的回复（按创建时间正序）
func (d *ReplyDAO) FindByCommentID(ctx context.Context, commentID uint64) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// UpdateContent 更新回复内容
func (d *ReplyDAO) UpdateContent(ctx context.Context, replyID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Reply{}).
		Where("id = ?", replyID).
		Update("content", content).Error
}

// Delete 删除回复
func (d *ReplyDAO) Delete(ctx context.Context, replyID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", replyID).
		Delete(&models.Reply{}).Error
}

// UpdateReactionCounts 覆盖写冗余计数
func (d *ReplyDAO) UpdateReactionCounts(ctx context.Context, replyID uint64, likes, dislikes int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Reply{}).
		Where("id = ?", replyID).
		Updates(map[string]interface{}{
			"likes":    likes,
			"dislikes": dislikes,
		}).Error
}
