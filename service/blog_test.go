package service

import (
	"context"
	"errors"
	"testing"

	"Inkwell/models"
	"Inkwell/pkg/response"
	"Inkwell/types"
)

func TestCreateBlogRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)

	// 1. viewer 不能发博客
	req := &types.CreateBlogRequest{Title: "标题", Content: "正文"}
	_, err := f.blog.CreateBlog(ctx, 2, "reader", models.RoleViewer, req)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != response.CodeForbidden {
		t.Fatalf("viewer 发博客期望 403，实际 %v", err)
	}

	// 2. writer 发布成功，审计流水同步落库
	blog, err := f.blog.CreateBlog(ctx, 1, "author", models.RoleWriter, req)
	if err != nil {
		t.Fatalf("发布博客失败: %v", err)
	}
	if blog.ID == 0 {
		t.Error("博客 ID 未生成")
	}

	var logCount int64
	f.db.Model(&models.ActivityLog{}).Where("action = ?", "发布博客").Count(&logCount)
	if logCount != 1 {
		t.Errorf("期望 1 条发布流水，实际 %d 条", logCount)
	}
}

func TestDeleteBlogCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)

	blog, err := f.blog.CreateBlog(ctx, 1, "author", models.RoleWriter,
		&types.CreateBlogRequest{Title: "标题", Content: "正文"})
	if err != nil {
		t.Fatalf("发布博客失败: %v", err)
	}

	// 1. 博客下挂评论、回复和各层反应
	comment, err := f.comment.CreateComment(ctx, 2, "reader", blog.ID, "评论")
	if err != nil {
		t.Fatalf("发表评论失败: %v", err)
	}
	reply, err := f.comment.CreateReply(ctx, 1, "author", comment.ID, "回复")
	if err != nil {
		t.Fatalf("发表回复失败: %v", err)
	}
	for _, target := range []struct {
		kind string
		id   uint64
	}{
		{models.TargetBlog, blog.ID},
		{models.TargetComment, comment.ID},
		{models.TargetReply, reply.ID},
	} {
		if _, err := f.reaction.ApplyReaction(ctx, 2, "reader", target.kind, target.id, models.ReactionLike); err != nil {
			t.Fatalf("点赞 %s 失败: %v", target.kind, err)
		}
	}

	var logsBefore int64
	f.db.Model(&models.ActivityLog{}).Count(&logsBefore)

	// 2. 其他人不能删
	err = f.blog.DeleteBlog(ctx, 2, "reader", blog.ID)
	var be *response.BizError
	if !errors.As(err, &be) || be.Code != response.CodeForbidden {
		t.Fatalf("非作者删除期望 403，实际 %v", err)
	}

	// 3. 作者删除，实体级联清掉
	if err := f.blog.DeleteBlog(ctx, 1, "author", blog.ID); err != nil {
		t.Fatalf("删除博客失败: %v", err)
	}

	for name, model := range map[string]interface{}{
		"博客": &models.Blog{},
		"评论": &models.Comment{},
		"回复": &models.Reply{},
		"反应": &models.Reaction{},
	} {
		var count int64
		f.db.Model(model).Count(&count)
		if count != 0 {
			t.Errorf("%s应随博客级联删除，实际剩余 %d 条", name, count)
		}
	}

	// 4. 审计流水全部保留，原条目翻转为已删除，另加一条删除流水
	var logsAfter int64
	f.db.Model(&models.ActivityLog{}).Count(&logsAfter)
	if logsAfter != logsBefore+1 {
		t.Errorf("期望流水 %d 条（原有 + 删除流水），实际 %d 条", logsBefore+1, logsAfter)
	}

	var remaining int64
	f.db.Model(&models.ActivityLog{}).
		Where("status = ?", models.ActivityStatusSubmitted).
		Count(&remaining)
	if remaining != 0 {
		t.Errorf("删除后不应再有正常状态的关联流水，实际 %d 条", remaining)
	}
}

func TestUpdateBlogKeepsOldFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	blog, err := f.blog.CreateBlog(ctx, 1, "author", models.RoleWriter,
		&types.CreateBlogRequest{Title: "旧标题", Content: "旧正文"})
	if err != nil {
		t.Fatalf("发布博客失败: %v", err)
	}

	// 只改标题，正文沿用旧值
	updated, err := f.blog.UpdateBlog(ctx, 1, "author", blog.ID, &types.UpdateBlogRequest{Title: "新标题"})
	if err != nil {
		t.Fatalf("修改博客失败: %v", err)
	}
	if updated.Title != "新标题" || updated.Content != "旧正文" {
		t.Errorf("期望标题更新正文保留，实际 title=%s content=%s", updated.Title, updated.Content)
	}
}
