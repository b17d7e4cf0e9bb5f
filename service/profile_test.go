package service

import (
	"context"
	"errors"
	"testing"

	"Inkwell/models"
	"Inkwell/pkg/response"
)

func TestWriterProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateUser(t, 2, "reader", models.RoleViewer)
	f.mustCreateUser(t, 3, "fan", models.RoleViewer)

	// 1. 两篇博客，两个订阅者，其中一个退订
	f.mustCreateBlog(t, 100, 1, "第一篇")
	f.mustCreateBlog(t, 101, 1, "第二篇")
	if _, err := f.subscription.Subscribe(ctx, 2, "reader", "author"); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if _, err := f.subscription.Subscribe(ctx, 3, "fan", "author"); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	if _, err := f.subscription.Unsubscribe(ctx, 2, "reader", "author"); err != nil {
		t.Fatalf("退订失败: %v", err)
	}

	// 2. 统计结果
	profile, err := f.profile.WriterProfile(ctx, "author")
	if err != nil {
		t.Fatalf("查询主页失败: %v", err)
	}
	if profile.BlogCount != 2 {
		t.Errorf("期望 blog_count=2，实际 %d", profile.BlogCount)
	}
	if profile.ActiveSubscribers != 1 {
		t.Errorf("期望 active_subscribers=1，实际 %d", profile.ActiveSubscribers)
	}
	if profile.UnsubscribeCount != 1 {
		t.Errorf("期望 unsubscribe_count=1，实际 %d", profile.UnsubscribeCount)
	}
	if len(profile.RecentBlogs) != 2 {
		t.Errorf("期望最近博客 2 篇，实际 %d 篇", len(profile.RecentBlogs))
	}
}

func TestWriterProfileDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 2, "reader", models.RoleViewer)

	var be *response.BizError

	// 1. 非作者没有主页统计
	_, err := f.profile.WriterProfile(ctx, "reader")
	if !errors.As(err, &be) || be.Code != response.CodeForbidden {
		t.Errorf("查询非作者主页期望 403，实际 %v", err)
	}

	// 2. 用户不存在
	_, err = f.profile.WriterProfile(ctx, "nobody")
	if !errors.As(err, &be) || be.Code != response.CodeNotFound {
		t.Errorf("查询不存在的用户期望 404，实际 %v", err)
	}
}
