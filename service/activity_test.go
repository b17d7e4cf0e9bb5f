package service

import (
	"context"
	"testing"

	"Inkwell/models"
)

func TestRecordAndLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 追加流水
	actorID := uint64(1)
	entry, err := f.activity.Record(ctx, &actorID, "发布博客", models.TargetBlog, 100, "author 发布了博客")
	if err != nil {
		t.Fatalf("追加流水失败: %v", err)
	}
	if entry.Status != models.ActivityStatusSubmitted {
		t.Errorf("新流水状态应为 %d，实际 %d", models.ActivityStatusSubmitted, entry.Status)
	}

	// 2. 挂接到博客索引，重复挂接幂等
	f.activity.LinkToBlog(ctx, 100, entry.ID)
	f.activity.LinkToBlog(ctx, 100, entry.ID)

	m, err := f.activity.MapDAO.GetByBlogID(ctx, 100)
	if err != nil || m == nil {
		t.Fatalf("索引记录缺失: %v", err)
	}
	ids, _ := f.activity.MapDAO.EntryLogIDs(ctx, m.ID)
	if len(ids) != 1 {
		t.Errorf("重复挂接应幂等，期望 1 条关联，实际 %d 条", len(ids))
	}

	// 3. 博客不存在时静默放弃，不产生索引
	f.activity.LinkToBlog(ctx, 999, entry.ID)
	missing, _ := f.activity.MapDAO.GetByBlogID(ctx, 999)
	if missing != nil {
		t.Error("不存在的博客不应产生索引记录")
	}
}

func TestOnBlogDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	blog := f.mustCreateBlog(t, 100, 1, "第一篇")

	// 1. 三条关联流水
	actorID := uint64(1)
	var linked []uint64
	for _, action := range []string{"发布博客", "发表评论", "点赞博客"} {
		entry, err := f.activity.Record(ctx, &actorID, action, models.TargetBlog, 100, action)
		if err != nil {
			t.Fatalf("追加流水失败: %v", err)
		}
		f.activity.LinkToBlog(ctx, 100, entry.ID)
		linked = append(linked, entry.ID)
	}

	// 2. 博客删除收尾
	if err := f.activity.OnBlogDeleted(ctx, blog, "author"); err != nil {
		t.Fatalf("删除收尾失败: %v", err)
	}

	// 3. 原有条目全部翻转为已删除，条目本身保留
	for _, id := range linked {
		entry, err := f.activity.LogDAO.GetByID(ctx, id)
		if err != nil || entry == nil {
			t.Fatalf("流水 %d 不应被删除: %v", id, err)
		}
		if entry.Status != models.ActivityStatusDeleted {
			t.Errorf("流水 %d 状态应翻转为 %d，实际 %d", id, models.ActivityStatusDeleted, entry.Status)
		}
	}

	// 4. 新增的删除流水本身就是已删除状态，且挂在索引上
	var deletionLogs []*models.ActivityLog
	f.db.Where("action = ?", "删除博客").Find(&deletionLogs)
	if len(deletionLogs) != 1 {
		t.Fatalf("期望 1 条删除流水，实际 %d 条", len(deletionLogs))
	}
	if deletionLogs[0].Status != models.ActivityStatusDeleted {
		t.Errorf("删除流水状态应为 %d，实际 %d", models.ActivityStatusDeleted, deletionLogs[0].Status)
	}

	m, _ := f.activity.MapDAO.GetByBlogID(ctx, 100)
	ids, _ := f.activity.MapDAO.EntryLogIDs(ctx, m.ID)
	if len(ids) != 4 {
		t.Errorf("索引下应有 4 条关联（3 旧 + 1 删除），实际 %d 条", len(ids))
	}

	// 5. 没有任何流水被物理删除
	var total int64
	f.db.Model(&models.ActivityLog{}).Count(&total)
	if total != 4 {
		t.Errorf("流水总数应为 4，实际 %d", total)
	}
}

func TestOnBlogDeletedWithoutMap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustCreateUser(t, 1, "author", models.RoleWriter)
	blog := f.mustCreateBlog(t, 100, 1, "没人动过的博客")

	// 从未产生过索引的博客，收尾也不应报错
	if err := f.activity.OnBlogDeleted(ctx, blog, "author"); err != nil {
		t.Fatalf("删除收尾失败: %v", err)
	}

	var deletionLogs []*models.ActivityLog
	f.db.Where("action = ?", "删除博客").Find(&deletionLogs)
	if len(deletionLogs) != 1 || deletionLogs[0].Status != models.ActivityStatusDeleted {
		t.Errorf("期望 1 条已删除状态的删除流水，实际 %d 条", len(deletionLogs))
	}
}
