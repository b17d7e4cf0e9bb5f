package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// GetByID 查询评论，未命中返回 nil
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var item models.Comment
	err := d.Db.WithContext(ctx).Where("id = ?", commentID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// FindByBlogID 查询博客下的评论（按创建时间正序）
func (d *CommentDAO) FindByBlogID(ctx context.Context, blogID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// UpdateContent 更新评论内容
func (d *CommentDAO) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

// Delete 删除评论
func (d *CommentDAO) Delete(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.Comment{}).Error
}

// UpdateReactionCounts 覆盖写冗余计数
func (d *CommentDAO) UpdateReactionCounts(ctx context.Context, commentID uint64, likes, dislikes int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", commentID).
		Updates(map[string]interface{}{
			"likes":    likes,
			"dislikes": dislikes,
		}).Error
}
