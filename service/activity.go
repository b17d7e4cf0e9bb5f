package service

import (
	"context"
	"fmt"
	"time"

	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/log"

	"go.uber.org/zap"
)

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	Record(ctx context.Context, actorID *uint64, action, targetKind string, targetID uint64, description string) (*models.ActivityLog, error)
	LinkToBlog(ctx context.Context, blogID, logID uint64)
	OnBlogDeleted(ctx context.Context, blog *models.Blog, actorName string) error
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.ActivityLog, error)
}

type ActivityService struct {
	LogDAO  *dao.ActivityLogDAO
	MapDAO  *dao.BlogActivityMapDAO
	BlogDAO *dao.BlogDAO
}

// FormatNow 审计描述里统一的时间格式
func FormatNow() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// Record 追加一条审计流水
// 存储失败直接上抛，调用方的整个操作按失败处理
func (s *ActivityService) Record(ctx context.Context, actorID *uint64, action, targetKind string, targetID uint64, description string) (*models.ActivityLog, error) {
	entry := &models.ActivityLog{
		Action:      action,
		UserID:      actorID,
		TargetKind:  targetKind,
		TargetID:    targetID,
		Description: description,
		Status:      models.ActivityStatusSubmitted,
	}
	if err := s.LogDAO.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// LinkToBlog 把审计条目挂到博客的索引上
// 尽力而为：博客或条目已不存在时静默放弃，不影响主流程
func (s *ActivityService) LinkToBlog(ctx context.Context, blogID, logID uint64) {
	blog, err := s.BlogDAO.GetByID(ctx, blogID)
	if err != nil || blog == nil {
		return
	}
	entry, err := s.LogDAO.GetByID(ctx, logID)
	if err != nil || entry == nil {
		return
	}

	m, err := s.MapDAO.GetOrCreateByBlogID(ctx, blogID)
	if err != nil {
		log.L.Warn("link activity to blog failed", zap.Uint64("blog_id", blogID), zap.Error(err))
		return
	}
	if err := s.MapDAO.AddEntry(ctx, m.ID, logID); err != nil {
		log.L.Warn("link activity to blog failed", zap.Uint64("blog_id", blogID), zap.Error(err))
	}
}

// OnBlogDeleted 博客物理删除前的审计收尾
// 1. 追加一条 status=2 的删除流水并挂到索引
// 2. 索引下其余条目批量翻转为 status=2，条目本身全部保留
func (s *ActivityService) OnBlogDeleted(ctx context.Context, blog *models.Blog, actorName string) error {
	description := fmt.Sprintf("博客《%s》于 %s 被 %s 删除", blog.Title, FormatNow(), actorName)

	entry := &models.ActivityLog{
		Action:      "删除博客",
		UserID:      &blog.UserID,
		TargetKind:  models.TargetBlog,
		TargetID:    blog.ID,
		Description: description,
		Status:      models.ActivityStatusDeleted,
	}
	if err := s.LogDAO.Create(ctx, entry); err != nil {
		return err
	}

	s.LinkToBlog(ctx, blog.ID, entry.ID)

	m, err := s.MapDAO.GetByBlogID(ctx, blog.ID)
	if err != nil {
		return err
	}
	if m == nil {
		// 博客从没产生过索引，没有需要翻转的条目
		return nil
	}

	logIDs, err := s.MapDAO.EntryLogIDs(ctx, m.ID)
	if err != nil {
		return err
	}

	// 新写入的删除流水保持 status=2 已经就位，翻转其余条目即可
	others := make([]uint64, 0, len(logIDs))
	for _, id := range logIDs {
		if id != entry.ID {
			others = append(others, id)
		}
	}
	return s.LogDAO.UpdateStatusByIDs(ctx, others, models.ActivityStatusDeleted)
}

func (s *ActivityService) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.ActivityLog, error) {
	return s.LogDAO.ListByUser(ctx, userID, limit, offset)
}
