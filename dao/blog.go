package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type BlogDAO struct {
	Repo[models.Blog]
}

func NewBlogDAO(db *gorm.DB) *BlogDAO {
	return &BlogDAO{Repo: NewRepo[models.Blog](db)}
}

// GetByID 查询博客，未命中返回 nil
func (d *BlogDAO) GetByID(ctx context.Context, blogID uint64) (*models.Blog, error) {
	var item models.Blog
	err := d.Db.WithContext(ctx).Where("id = ?", blogID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// List 博客列表（按创建时间正序，翻页）
func (d *BlogDAO) List(ctx context.Context, limit, offset int) ([]*models.Blog, int64, error) {
	var blogs []*models.Blog
	var total int64

	err := d.Db.WithContext(ctx).Model(&models.Blog{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = d.Db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error
	return blogs, total, err
}

// FindByUserID 查询指定作者的博客列表
func (d *BlogDAO) FindByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error
	return blogs, err
}

// CountByUserID 统计作者发布的博客数
func (d *BlogDAO) CountByUserID(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// UpdateContent 更新标题和正文
func (d *BlogDAO) UpdateContent(ctx context.Context, blogID uint64, title, content string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", blogID).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
		}).Error
}

// UpdateReactionCounts 覆盖写冗余计数
func (d *BlogDAO) UpdateReactionCounts(ctx context.Context, blogID uint64, likes, dislikes int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", blogID).
		Updates(map[string]interface{}{
			"likes":    likes,
			"dislikes": dislikes,
		}).Error
}
