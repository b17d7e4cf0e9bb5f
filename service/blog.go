package service

import (
	"context"
	"fmt"

	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/response"
	"Inkwell/pkg/snowflake"
	"Inkwell/types"

	"gorm.io/gorm"
)

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	CreateBlog(ctx context.Context, userID uint64, username, role string, req *types.CreateBlogRequest) (*models.Blog, error)
	UpdateBlog(ctx context.Context, userID uint64, username string, blogID uint64, req *types.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, userID uint64, username string, blogID uint64) error
	GetBlog(ctx context.Context, blogID uint64) (*types.BlogDetail, error)
	ListBlogs(ctx context.Context, page, pageSize int) (*types.ListBlogsResponse, error)
}

type BlogService struct {
	DB              *gorm.DB
	BlogDAO         *dao.BlogDAO
	CommentDAO      *dao.CommentDAO
	ReplyDAO        *dao.ReplyDAO
	SubscriptionDAO *dao.SubscriptionDAO
	Activity        IActivityService
	Notify          INotifyService
}

// CreateBlog 发布博客，仅 writer 角色可用
// 落库后追加审计流水，并异步通知订阅者
func (s *BlogService) CreateBlog(ctx context.Context, userID uint64, username, role string, req *types.CreateBlogRequest) (*models.Blog, error) {
	if role != models.RoleWriter {
		return nil, response.NewError(response.CodeForbidden, "只有作者可以发布博客")
	}
	if req.Title == "" {
		return nil, response.NewError(response.CodeBadRequest, "标题不能为空")
	}
	if req.Content == "" {
		return nil, response.NewError(response.CodeBadRequest, "正文不能为空")
	}

	blog := &models.Blog{
		ID:      uint64(snowflake.GenID()),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.BlogDAO.Create(ctx, blog); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("博客《%s》由 %s 于 %s 创建", blog.Title, username, FormatNow())
	entry, err := s.Activity.Record(ctx, &userID, "发布博客", models.TargetBlog, blog.ID, description)
	if err != nil {
		return nil, err
	}
	s.Activity.LinkToBlog(ctx, blog.ID, entry.ID)

	// 订阅者邮件通知走 MQ，失败不阻塞发布
	emails, err := s.SubscriptionDAO.ActiveSubscriberEmails(ctx, userID)
	if err == nil {
		s.Notify.BlogPublished(username, blog.Title, emails)
	}

	return blog, nil
}

// UpdateBlog 修改博客，仅作者本人可用
func (s *BlogService) UpdateBlog(ctx context.Context, userID uint64, username string, blogID uint64, req *types.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.BlogDAO.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, response.NewError(response.CodeNotFound, "博客不存在")
	}
	if blog.UserID != userID {
		return nil, response.NewError(response.CodeForbidden, "只能修改自己的博客")
	}

	if req.Title == "" {
		req.Title = blog.Title
	}
	if req.Content == "" {
		req.Content = blog.Content
	}
	if err := s.BlogDAO.UpdateContent(ctx, blogID, req.Title, req.Content); err != nil {
		return nil, err
	}
	blog.Title = req.Title
	blog.Content = req.Content

	description := fmt.Sprintf("博客《%s》由 %s 于 %s 修改", blog.Title, username, FormatNow())
	entry, err := s.Activity.Record(ctx, &userID, "修改博客", models.TargetBlog, blog.ID, description)
	if err != nil {
		return nil, err
	}
	s.Activity.LinkToBlog(ctx, blog.ID, entry.ID)

	return blog, nil
}

// DeleteBlog 删除博客
// 先做审计收尾（删除流水 + 相关条目状态翻转），再事务内物理级联删除
// 评论、回复、反应记录随博客一并清掉，审计流水全部保留
func (s *BlogService) DeleteBlog(ctx context.Context, userID uint64, username string, blogID uint64) error {
	blog, err := s.BlogDAO.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog == nil {
		return response.NewError(response.CodeNotFound, "博客不存在")
	}
	if blog.UserID != userID {
		return response.NewError(response.CodeForbidden, "只能删除自己的博客")
	}

	if err := s.Activity.OnBlogDeleted(ctx, blog, username); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint64
		if err := tx.Model(&models.Comment{}).
			Where("blog_id = ?", blogID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			var replyIDs []uint64
			if err := tx.Model(&models.Reply{}).
				Where("comment_id IN ?", commentIDs).
				Pluck("id", &replyIDs).Error; err != nil {
				return err
			}

			if len(replyIDs) > 0 {
				if err := tx.Where("target_kind = ? AND target_id IN ?", models.TargetReply, replyIDs).
					Delete(&models.Reaction{}).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", replyIDs).Delete(&models.Reply{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("target_kind = ? AND target_id IN ?", models.TargetComment, commentIDs).
				Delete(&models.Reaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("target_kind = ? AND target_id = ?", models.TargetBlog, blogID).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", blogID).Delete(&models.Blog{}).Error
	})
}

// GetBlog 博客详情，带全部评论和回复
func (s *BlogService) GetBlog(ctx context.Context, blogID uint64) (*types.BlogDetail, error) {
	blog, err := s.BlogDAO.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, response.NewError(response.CodeNotFound, "博客不存在")
	}

	comments, err := s.CommentDAO.FindByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	detail := &types.BlogDetail{
		Blog:     blog,
		Comments: make([]*types.CommentDetail, 0, len(comments)),
	}
	for _, comment := range comments {
		replies, err := s.ReplyDAO.FindByCommentID(ctx, comment.ID)
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, &types.CommentDetail{
			Comment: comment,
			Replies: replies,
		})
	}
	return detail, nil
}

// ListBlogs 博客列表（翻页）
func (s *BlogService) ListBlogs(ctx context.Context, page, pageSize int) (*types.ListBlogsResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	blogs, total, err := s.BlogDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &types.ListBlogsResponse{
		Blogs: blogs,
		Total: total,
	}, nil
}
