package service

import (
	"context"
	"fmt"

	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/response"
	"Inkwell/pkg/snowflake"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, userID uint64, username string, blogID uint64, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, userID uint64, username string, commentID uint64, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID uint64, username string, commentID uint64) error
	CreateReply(ctx context.Context, userID uint64, username string, commentID uint64, content string) (*models.Reply, error)
	UpdateReply(ctx context.Context, userID uint64, username string, replyID uint64, content string) (*models.Reply, error)
	DeleteReply(ctx context.Context, userID uint64, username string, replyID uint64) error
}

type CommentService struct {
	DB         *gorm.DB
	BlogDAO    *dao.BlogDAO
	CommentDAO *dao.CommentDAO
	ReplyDAO   *dao.ReplyDAO
	Activity   IActivityService
}

// CreateComment 评论博客
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, username string, blogID uint64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, response.NewError(response.CodeBadRequest, "评论内容不能为空")
	}

	blog, err := s.BlogDAO.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, response.NewError(response.CodeNotFound, "博客不存在")
	}

	comment := &models.Comment{
		ID:      uint64(snowflake.GenID()),
		BlogID:  blogID,
		UserID:  userID,
		Content: content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s 于 %s 评论了博客《%s》", username, FormatNow(), blog.Title)
	entry, err := s.Activity.Record(ctx, &userID, "发表评论", models.TargetComment, comment.ID, description)
	if err != nil {
		return nil, err
	}
	s.Activity.LinkToBlog(ctx, blogID, entry.ID)

	return comment, nil
}

// UpdateComment 修改评论，仅评论人本人可用
func (s *CommentService) UpdateComment(ctx context.Context, userID uint64, username string, commentID uint64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, response.NewError(response.CodeBadRequest, "评论内容不能为空")
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewError(response.CodeNotFound, "评论不存在")
	}
	if comment.UserID != userID {
		return nil, response.NewError(response.CodeForbidden, "只能修改自己的评论")
	}

	if err := s.CommentDAO.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	comment.Content = content

	description := fmt.Sprintf("%s 于 %s 修改了评论 #%d", username, FormatNow(), commentID)
	entry, err := s.Activity.Record(ctx, &userID, "修改评论", models.TargetComment, commentID, description)
	if err != nil {
		return nil, err
	}
	s.Activity.LinkToBlog(ctx, comment.BlogID, entry.ID)

	return comment, nil
}

// DeleteComment 删除评论，回复与反应记录级联清理
func (s *CommentService) DeleteComment(ctx context.Context, userID uint64, username string, commentID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(response.CodeNotFound, "评论不存在")
	}
	if comment.UserID != userID {
		return response.NewError(response.CodeForbidden, "只能删除自己的评论")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var replyIDs []uint64
		if err := tx.Model(&models.Reply{}).
			Where("comment_id = ?", commentID).
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

		if err := tx.Where("target_kind = ? AND target_id = ?", models.TargetComment, commentID).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return err
	}

	description := fmt.Sprintf("%s 于 %s 删除了评论 #%d", username, FormatNow(), commentID)
	entry, err := s.Activity.Record(ctx, &userID, "删除评论", models.TargetComment, commentID, description)
	if err != nil {
		return err
	}
	s.Activity.LinkToBlog(ctx, comment.BlogID, entry.ID)

	return nil
}

// CreateReply 回复评论
func (s *CommentService) CreateReply(ctx context.Context, userID uint64, username string, commentID uint64, content string) (*models.Reply, error) {
	if content == "" {
		return nil, response.NewError(response.CodeBadRequest, "回复内容不能为空")
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewError(response.CodeNotFound, "评论不存在")
	}

	reply := &models.Reply{
		ID:        uint64(snowflake.GenID()),
		CommentID: commentID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.ReplyDAO.Create(ctx, reply); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s 于 %s 回复了评论 #%d", username, FormatNow(), commentID)
	entry, err := s.Activity.Record(ctx, &userID, "发表回复", models.TargetReply, reply.ID, description)
	if err != nil {
		return nil, err
	}
	s.Activity.LinkToBlog(ctx, comment.BlogID, entry.ID)

	return reply, nil
}

// UpdateReply 修改回复，仅回复人本人可用
func (s *CommentService) UpdateReply(ctx context.Context, userID uint64, username string, replyID uint64, content string) (*models.Reply, error) {
	if content == "" {
		return nil, response.NewError(response.CodeBadRequest, "回复内容不能为空")
	}

	reply, err := s.ReplyDAO.GetByID(ctx, replyID)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, response.NewError(response.CodeNotFound, "回复不存在")
	}
	if reply.UserID != userID {
		return nil, response.NewError(response.CodeForbidden, "只能修改自己的回复")
	}

	if err := s.ReplyDAO.UpdateContent(ctx, replyID, content); err != nil {
		return nil, err
	}
	reply.Content = content

	description := fmt.Sprintf("%s 于 %s 修改了回复 #%d", username, FormatNow(), replyID)
	entry, err := s.Activity.Record(ctx, &userID, "修改回复", models.TargetReply, replyID, description)
	if err != nil {
		return nil, err
	}
	if comment, err := s.CommentDAO.GetByID(ctx, reply.CommentID); err == nil && comment != nil {
		s.Activity.LinkToBlog(ctx, comment.BlogID, entry.ID)
	}

	return reply, nil
}

// DeleteReply 删除回复，反应记录级联清理
func (s *CommentService) DeleteReply(ctx context.Context, userID uint64, username string, replyID uint64) error {
	reply, err := s.ReplyDAO.GetByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return response.NewError(response.CodeNotFound, "回复不存在")
	}
	if reply.UserID != userID {
		return response.NewError(response.CodeForbidden, "只能删除自己的回复")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.TargetReply, replyID).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", replyID).Delete(&models.Reply{}).Error
	})
	if err != nil {
		return err
	}

	description := fmt.Sprintf("%s 于 %s 删除了回复 #%d", username, FormatNow(), replyID)
	entry, err := s.Activity.Record(ctx, &userID, "删除回复", models.TargetReply, replyID, description)
	if err != nil {
		return err
	}
	if comment, err := s.CommentDAO.GetByID(ctx, reply.CommentID); err == nil && comment != nil {
		s.Activity.LinkToBlog(ctx, comment.BlogID, entry.ID)
	}

	return nil
}
