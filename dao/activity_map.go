package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type BlogActivityMapDAO struct {
	Repo[models.BlogActivityMap]
}

func NewBlogActivityMapDAO(db *gorm.DB) *BlogActivityMapDAO {
	return &BlogActivityMapDAO{Repo: NewRepo[models.BlogActivityMap](db)}
}

// GetOrCreateByBlogID 确保博客有对应的索引记录
func (d *BlogActivityMapDAO) GetOrCreateByBlogID(ctx context.Context, blogID uint64) (*models.BlogActivityMap, error) {
	item := &models.BlogActivityMap{BlogID: blogID}
	err := d.Db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		FirstOrCreate(item).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetByBlogID 查询索引记录，未命中返回 nil
func (d *BlogActivityMapDAO) GetByBlogID(ctx context.Context, blogID uint64) (*models.BlogActivityMap, error) {
	var item models.BlogActivityMap
	err := d.Db.WithContext(ctx).Where("blog_id = ?", blogID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// AddEntry 关联审计条目，重复关联按唯一键幂等处理
func (d *BlogActivityMapDAO) AddEntry(ctx context.Context, mapID, logID uint64) error {
	entry := &models.BlogActivityEntry{MapID: mapID, LogID: logID}
	return d.Db.WithContext(ctx).
		Where("map_id = ? AND log_id = ?", mapID, logID).
		FirstOrCreate(entry).Error
}

// EntryLogIDs 取出索引下关联的全部审计条目 ID
func (d *BlogActivityMapDAO) EntryLogIDs(ctx context.Context, mapID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.BlogActivityEntry{}).
		Where("map_id = ?", mapID).
		Pluck("log_id", &ids).Error
	return ids, err
}
