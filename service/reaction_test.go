package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"Inkwell/models"
	"Inkwell/pkg/response"
	"Inkwell/types"

	"github.com/redis/go-redis/v9"
)

func TestApplyReactionToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 1. 作者发博客，读者点赞
	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	result, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike)
	if err != nil {
		t.Fatalf("点赞失败: %v", err)
	}
	if result.Result != types.ReactionApplied {
		t.Errorf("期望 result=%s，实际 %s", types.ReactionApplied, result.Result)
	}
	if result.Likes != 1 || result.Dislikes != 0 {
		t.Errorf("期望 likes=1 dislikes=0，实际 likes=%d dislikes=%d", result.Likes, result.Dislikes)
	}

	// 2. 冗余计数同步落到博客行
	blog, err := f.reaction.BlogDAO.GetByID(ctx, 100)
	if err != nil || blog == nil {
		t.Fatalf("查询博客失败: %v", err)
	}
	if blog.Likes != 1 {
		t.Errorf("博客冗余计数未更新，likes=%d", blog.Likes)
	}

	// 3. 重复点赞等于取消
	result, err = f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike)
	if err != nil {
		t.Fatalf("取消点赞失败: %v", err)
	}
	if result.Result != types.ReactionRemoved {
		t.Errorf("期望 result=%s，实际 %s", types.ReactionRemoved, result.Result)
	}
	if result.Likes != 0 {
		t.Errorf("取消后期望 likes=0，实际 %d", result.Likes)
	}

	// 4. 反应记录应当被删除
	var count int64
	f.db.Model(&models.Reaction{}).Count(&count)
	if count != 0 {
		t.Errorf("取消后 reactions 表应为空，实际 %d 条", count)
	}
}

func TestApplyReactionSwitch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 先点赞再点踩，旧记录原地改写
	if _, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike); err != nil {
		t.Fatalf("点赞失败: %v", err)
	}
	result, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionDislike)
	if err != nil {
		t.Fatalf("切换反应失败: %v", err)
	}
	if result.Result != types.ReactionChanged {
		t.Errorf("期望 result=%s，实际 %s", types.ReactionChanged, result.Result)
	}
	if result.Likes != 0 || result.Dislikes != 1 {
		t.Errorf("期望 likes=0 dislikes=1，实际 likes=%d dislikes=%d", result.Likes, result.Dislikes)
	}

	// 2. 一人一目标始终最多一条记录
	var count int64
	f.db.Model(&models.Reaction{}).Where("user_id = ? AND target_id = ?", 2, 100).Count(&count)
	if count != 1 {
		t.Errorf("期望 1 条反应记录，实际 %d 条", count)
	}
}

func TestApplyReactionSelfRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 不允许踩自己的内容
	_, err := f.reaction.ApplyReaction(ctx, 1, "author", models.TargetBlog, 100, models.ReactionDislike)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != response.CodeForbidden {
		t.Fatalf("期望 403 业务错误，实际 %v", err)
	}

	// 2. 点赞自己的内容放行
	result, err := f.reaction.ApplyReaction(ctx, 1, "author", models.TargetBlog, 100, models.ReactionLike)
	if err != nil {
		t.Fatalf("点赞自己的博客应当放行: %v", err)
	}
	if result.Likes != 1 {
		t.Errorf("期望 likes=1，实际 %d", result.Likes)
	}
}

func TestApplyReactionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 2, "reader", models.RoleViewer)

	// 1. 非法反应类型
	_, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, "love")
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != response.CodeBadRequest {
		t.Fatalf("期望 400 业务错误，实际 %v", err)
	}

	// 2. 目标不存在
	_, err = f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike)
	if !errors.As(err, &be) || be.Code != response.CodeNotFound {
		t.Fatalf("期望 404 业务错误，实际 %v", err)
	}

	// 3. 非法目标类型
	_, err = f.reaction.ApplyReaction(ctx, 2, "reader", "tag", 100, models.ReactionLike)
	if !errors.As(err, &be) || be.Code != response.CodeBadRequest {
		t.Fatalf("期望 400 业务错误，实际 %v", err)
	}
}

func TestApplyReactionMultiUserCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateBlog(t, 100, 1, "第一篇")
	for i := uint64(2); i <= 6; i++ {
		f.mustCreateUser(t, i, "reader"+string(rune('a'+i)), models.RoleViewer)
	}

	// 1. 三人点赞两人点踩
	for _, uid := range []uint64{2, 3, 4} {
		if _, err := f.reaction.ApplyReaction(ctx, uid, "reader", models.TargetBlog, 100, models.ReactionLike); err != nil {
			t.Fatalf("用户 %d 点赞失败: %v", uid, err)
		}
	}
	for _, uid := range []uint64{5, 6} {
		if _, err := f.reaction.ApplyReaction(ctx, uid, "reader", models.TargetBlog, 100, models.ReactionDislike); err != nil {
			t.Fatalf("用户 %d 点踩失败: %v", uid, err)
		}
	}

	// 2. 其中一人取消，一人切换
	if _, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike); err != nil {
		t.Fatalf("取消点赞失败: %v", err)
	}
	result, err := f.reaction.ApplyReaction(ctx, 5, "reader", models.TargetBlog, 100, models.ReactionLike)
	if err != nil {
		t.Fatalf("切换反应失败: %v", err)
	}

	// 3. 最终 likes=3（3,4,5）dislikes=1（6），计数与重算结果一致
	if result.Likes != 3 || result.Dislikes != 1 {
		t.Errorf("期望 likes=3 dislikes=1，实际 likes=%d dislikes=%d", result.Likes, result.Dislikes)
	}
	likes, dislikes, err := f.reaction.ReactionDAO.CountByTarget(ctx, models.TargetBlog, 100)
	if err != nil {
		t.Fatalf("重算计数失败: %v", err)
	}
	blog, _ := f.reaction.BlogDAO.GetByID(ctx, 100)
	if blog.Likes != likes || blog.Dislikes != dislikes {
		t.Errorf("冗余计数漂移: 博客行 likes=%d dislikes=%d，重算 likes=%d dislikes=%d",
			blog.Likes, blog.Dislikes, likes, dislikes)
	}
}

func TestApplyReactionLockHeld(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 锁被占用时按频繁操作拒绝
	if err := f.reaction.Redis.SetNX(ctx, "lock:reaction:2:blog:100", 1, time.Minute).Err(); err != nil {
		t.Fatalf("预置锁失败: %v", err)
	}
	_, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != http.StatusTooManyRequests {
		t.Fatalf("锁占用期望 429，实际 %v", err)
	}

	// 2. 被拒绝的请求不应落下任何反应记录
	var count int64
	f.db.Model(&models.Reaction{}).Count(&count)
	if count != 0 {
		t.Errorf("锁占用期间不应写入反应记录，实际 %d 条", count)
	}
}

func TestApplyReactionRedisDown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// redis 不可用是基础设施故障，应报系统错误而不是频繁操作
	f.reaction.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	_, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetBlog, 100, models.ReactionLike)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != response.CodeInternal {
		t.Fatalf("redis 故障期望 500，实际 %v", err)
	}
}

func TestApplyReactionAudit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 评论上的反应也要挂到所属博客的审计索引
	comment := &models.Comment{ID: 200, BlogID: 100, UserID: 1, Content: "评论"}
	if err := f.db.Create(comment).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	if _, err := f.reaction.ApplyReaction(ctx, 2, "reader", models.TargetComment, 200, models.ReactionLike); err != nil {
		t.Fatalf("点赞评论失败: %v", err)
	}

	// 2. 审计流水已追加
	var logCount int64
	f.db.Model(&models.ActivityLog{}).Where("target_kind = ?", models.TargetComment).Count(&logCount)
	if logCount != 1 {
		t.Fatalf("期望 1 条审计流水，实际 %d 条", logCount)
	}

	// 3. 索引记录指向博客 100
	m, err := f.activity.MapDAO.GetByBlogID(ctx, 100)
	if err != nil || m == nil {
		t.Fatalf("博客审计索引缺失: %v", err)
	}
	ids, err := f.activity.MapDAO.EntryLogIDs(ctx, m.ID)
	if err != nil || len(ids) != 1 {
		t.Errorf("期望索引下 1 条关联，实际 %d 条（err=%v）", len(ids), err)
	}
}
