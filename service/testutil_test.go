package service

import (
	"fmt"
	"testing"

	"Inkwell/dao"
	"Inkwell/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// newTestDB 内存数据库，按测试名隔离
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&models.Users{},
		&models.Blog{},
		&models.Comment{},
		&models.Reply{},
		&models.Reaction{},
		&models.ActivityLog{},
		&models.BlogActivityMap{},
		&models.BlogActivityEntry{},
		&models.Subscription{},
		&models.UnsubscribeRecord{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// noopNotify 测试里不需要真的投递 MQ 消息
type noopNotify struct{}

func (noopNotify) BlogPublished(authorName, blogTitle string, emails []string) {}

type fixture struct {
	db *gorm.DB

	activity     *ActivityService
	reaction     *ReactionService
	blog         *BlogService
	comment      *CommentService
	subscription *SubscriptionService
	profile      *ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	blogDAO := dao.NewBlogDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	replyDAO := dao.NewReplyDAO(db)
	reactionDAO := dao.NewReactionDAO(db)
	subscriptionDAO := dao.NewSubscriptionDAO(db)
	unsubscribeDAO := dao.NewUnsubscribeRecordDAO(db)
	userDAO := dao.NewUsers(db)

	activity := &ActivityService{
		LogDAO:  dao.NewActivityLogDAO(db),
		MapDAO:  dao.NewBlogActivityMapDAO(db),
		BlogDAO: blogDAO,
	}

	return &fixture{
		db:       db,
		activity: activity,
		reaction: &ReactionService{
			ReactionDAO: reactionDAO,
			BlogDAO:     blogDAO,
			CommentDAO:  commentDAO,
			ReplyDAO:    replyDAO,
			Activity:    activity,
			Redis:       newTestRedis(t),
		},
		blog: &BlogService{
			DB:              db,
			BlogDAO:         blogDAO,
			CommentDAO:      commentDAO,
			ReplyDAO:        replyDAO,
			SubscriptionDAO: subscriptionDAO,
			Activity:        activity,
			Notify:          noopNotify{},
		},
		comment: &CommentService{
			DB:         db,
			BlogDAO:    blogDAO,
			CommentDAO: commentDAO,
			ReplyDAO:   replyDAO,
			Activity:   activity,
		},
		subscription: &SubscriptionService{
			DB:              db,
			SubscriptionDAO: subscriptionDAO,
			UnsubscribeDAO:  unsubscribeDAO,
			UserDAO:         userDAO,
			Activity:        activity,
		},
		profile: &ProfileService{
			UserDAO:         userDAO,
			BlogDAO:         blogDAO,
			SubscriptionDAO: subscriptionDAO,
			UnsubscribeDAO:  unsubscribeDAO,
		},
	}
}

// 全部模型能在同一个库里建表（索引名不冲突）
func TestAutoMigrateAllModels(t *testing.T) {
	newTestDB(t)
}

func (f *fixture) mustCreateUser(t *testing.T, id uint64, username, role string) *models.Users {
	t.Helper()
	user := &models.Users{
		ID:       id,
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     role,
	}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

func (f *fixture) mustCreateBlog(t *testing.T, id, userID uint64, title string) *models.Blog {
	t.Helper()
	blog := &models.Blog{
		ID:      id,
		UserID:  userID,
		Title:   title,
		Content: "正文",
	}
	if err := f.db.Create(blog).Error; err != nil {
		t.Fatalf("创建博客失败: %v", err)
	}
	return blog
}
