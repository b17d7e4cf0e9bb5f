package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/response"
	"Inkwell/types"

	"github.com/redis/go-redis/v9"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	ApplyReaction(ctx context.Context, actorID uint64, actorName string, targetKind string, targetID uint64, kind string) (*types.ReactionResult, error)
}

// ReactionTarget 可被点赞/点踩的目标
// blog/comment/reply 三种实体各自提供绑定，引擎只面向这组能力编写一次
type ReactionTarget interface {
	Kind() string
	ID() uint64
	OwnerID() uint64
	// BlogID 返回所属博客 ID，用于审计索引挂接
	BlogID(ctx context.Context) (uint64, error)
	Label() string
	UpdateCounts(ctx context.Context, likes, dislikes int64) error
}

type ReactionService struct {
	ReactionDAO *dao.ReactionDAO
	BlogDAO     *dao.BlogDAO
	CommentDAO  *dao.CommentDAO
	ReplyDAO    *dao.ReplyDAO
	Activity    IActivityService
	Redis       *redis.Client
}

// ApplyReaction 反应状态机
// 无记录 -> 创建（reacted）；同类记录 -> 删除（removed）；异类记录 -> 改写（changed）
// 每次变更后按 reactions 表全量重算目标计数，并追加审计流水
func (s *ReactionService) ApplyReaction(ctx context.Context, actorID uint64, actorName string, targetKind string, targetID uint64, kind string) (*types.ReactionResult, error) {
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return nil, response.NewError(response.CodeBadRequest, "反应类型只能是 like 或 dislike")
	}

	// 防止快速连点重复提交
	lockKey := fmt.Sprintf("lock:reaction:%d:%s:%d", actorID, targetKind, targetID)
	lock, err := s.Redis.SetNX(ctx, lockKey, 1, 5*time.Second).Result()
	if err != nil {
		return nil, response.NewError(response.CodeInternal, "系统繁忙，请稍后重试")
	}
	if !lock {
		return nil, response.NewError(http.StatusTooManyRequests, "操作太频繁，请稍后重试")
	}
	defer s.Redis.Del(ctx, lockKey)

	target, err := s.resolveTarget(ctx, targetKind, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, response.NewError(response.CodeNotFound, "目标不存在")
	}

	// 不允许踩自己的内容，点赞自己的内容放行
	if kind == models.ReactionDislike && target.OwnerID() == actorID {
		return nil, response.NewError(response.CodeForbidden, fmt.Sprintf("不能踩自己的%s", target.Label()))
	}

	existing, err := s.ReactionDAO.GetByUserTarget(ctx, actorID, targetKind, targetID)
	if err != nil {
		return nil, err
	}

	var (
		result string
		action string
	)
	switch {
	case existing == nil:
		reaction := &models.Reaction{
			UserID:     actorID,
			TargetKind: targetKind,
			TargetID:   targetID,
			Kind:       kind,
		}
		if err := s.ReactionDAO.Create(ctx, reaction); err != nil {
			return nil, err
		}
		result = types.ReactionApplied
		action = fmt.Sprintf("%s%s", kindLabel(kind), target.Label())

	case existing.Kind == kind:
		// 重复同类反应等于取消
		if err := s.ReactionDAO.DeleteByID(ctx, existing.ID); err != nil {
			return nil, err
		}
		result = types.ReactionRemoved
		action = fmt.Sprintf("取消%s%s", kindLabel(kind), target.Label())

	default:
		if err := s.ReactionDAO.UpdateKind(ctx, existing.ID, kind); err != nil {
			return nil, err
		}
		result = types.ReactionChanged
		action = fmt.Sprintf("%s反应改为%s", target.Label(), kindLabel(kind))
	}

	// 全量重算冗余计数，reactions 表是唯一事实来源
	likes, dislikes, err := s.ReactionDAO.CountByTarget(ctx, targetKind, targetID)
	if err != nil {
		return nil, err
	}
	if err := target.UpdateCounts(ctx, likes, dislikes); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s 于 %s %s #%d", actorName, FormatNow(), action, targetID)
	entry, err := s.Activity.Record(ctx, &actorID, action, targetKind, targetID, description)
	if err != nil {
		return nil, err
	}
	if blogID, err := target.BlogID(ctx); err == nil && blogID > 0 {
		s.Activity.LinkToBlog(ctx, blogID, entry.ID)
	}

	return &types.ReactionResult{
		Result:   result,
		Likes:    likes,
		Dislikes: dislikes,
	}, nil
}

func kindLabel(kind string) string {
	if kind == models.ReactionLike {
		return "点赞"
	}
	return "点踩"
}

func (s *ReactionService) resolveTarget(ctx context.Context, targetKind string, targetID uint64) (ReactionTarget, error) {
	switch targetKind {
	case models.TargetBlog:
		blog, err := s.BlogDAO.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if blog == nil {
			return nil, nil
		}
		return &blogTarget{blog: blog, dao: s.BlogDAO}, nil

	case models.TargetComment:
		comment, err := s.CommentDAO.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if comment == nil {
			return nil, nil
		}
		return &commentTarget{comment: comment, dao: s.CommentDAO}, nil

	case models.TargetReply:
		reply, err := s.ReplyDAO.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if reply == nil {
			return nil, nil
		}
		return &replyTarget{reply: reply, dao: s.ReplyDAO, commentDAO: s.CommentDAO}, nil

	default:
		return nil, response.NewError(response.CodeBadRequest, "不支持的目标类型")
	}
}

type blogTarget struct {
	blog *models.Blog
	dao  *dao.BlogDAO
}

func (t *blogTarget) Kind() string    { return models.TargetBlog }
func (t *blogTarget) ID() uint64      { return t.blog.ID }
func (t *blogTarget) OwnerID() uint64 { return t.blog.UserID }
func (t *blogTarget) Label() string   { return "博客" }
func (t *blogTarget) BlogID(ctx context.Context) (uint64, error) {
	return t.blog.ID, nil
}
func (t *blogTarget) UpdateCounts(ctx context.Context, likes, dislikes int64) error {
	return t.dao.UpdateReactionCounts(ctx, t.blog.ID, likes, dislikes)
}

type commentTarget struct {
	comment *models.Comment
	dao     *dao.CommentDAO
}

func (t *commentTarget) Kind() string    { return models.TargetComment }
func (t *commentTarget) ID() uint64      { return t.comment.ID }
func (t *commentTarget) OwnerID() uint64 { return t.comment.UserID }
func (t *commentTarget) Label() string   { return "评论" }
func (t *commentTarget) BlogID(ctx context.Context) (uint64, error) {
	return t.comment.BlogID, nil
}
func (t *commentTarget) UpdateCounts(ctx context.Context, likes, dislikes int64) error {
	return t.dao.UpdateReactionCounts(ctx, t.comment.ID, likes, dislikes)
}

type replyTarget struct {
	reply      *models.Reply
	dao        *dao.ReplyDAO
	commentDAO *dao.CommentDAO
}

func (t *replyTarget) Kind() string    { return models.TargetReply }
func (t *replyTarget) ID() uint64      { return t.reply.ID }
func (t *replyTarget) OwnerID() uint64 { return t.reply.UserID }
func (t *replyTarget) Label() string   { return "回复" }
func (t *replyTarget) BlogID(ctx context.Context) (uint64, error) {
	comment, err := t.commentDAO.GetByID(ctx, t.reply.CommentID)
	if err != nil || comment == nil {
		return 0, err
	}
	return comment.BlogID, nil
}
func (t *replyTarget) UpdateCounts(ctx context.Context, likes, dislikes int64) error {
	return t.dao.UpdateReactionCounts(ctx, t.reply.ID, likes, dislikes)
}
