package service

import (
	"context"

	"Inkwell/dao"
	"Inkwell/pkg/response"
	"Inkwell/types"

	"gorm.io/gorm"
)

// 主页最近博客条数
const profileRecentBlogs = 5

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	WriterProfile(ctx context.Context, authorName string) (*types.WriterProfile, error)
}

type ProfileService struct {
	UserDAO         *dao.Users
	BlogDAO         *dao.BlogDAO
	SubscriptionDAO *dao.SubscriptionDAO
	UnsubscribeDAO  *dao.UnsubscribeRecordDAO
}

// WriterProfile 作者主页统计
// 博客总数、当前生效订阅者数、历史退订次数，外加最近几篇博客
func (s *ProfileService) WriterProfile(ctx context.Context, authorName string) (*types.WriterProfile, error) {
	author, err := s.UserDAO.FindByUsername(ctx, authorName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewError(response.CodeNotFound, "用户不存在")
		}
		return nil, err
	}
	if !author.IsWriter() {
		return nil, response.NewError(response.CodeForbidden, "只有作者才有主页统计")
	}

	blogCount, err := s.BlogDAO.CountByUserID(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.SubscriptionDAO.CountActiveByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	unsubscribes, err := s.UnsubscribeDAO.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.BlogDAO.FindByUserID(ctx, author.ID, profileRecentBlogs, 0)
	if err != nil {
		return nil, err
	}

	return &types.WriterProfile{
		UserID:            author.ID,
		Username:          author.Username,
		BlogCount:         blogCount,
		ActiveSubscribers: subscribers,
		UnsubscribeCount:  unsubscribes,
		RecentBlogs:       recent,
	}, nil
}
