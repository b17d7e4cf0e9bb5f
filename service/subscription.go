package service

import (
	"context"
	"fmt"

	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/response"

	"gorm.io/gorm"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, subscriberID uint64, subscriberName, authorName string) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID uint64, subscriberName, authorName string) (*models.UnsubscribeRecord, error)
	IsSubscribed(ctx context.Context, subscriberID uint64, authorName string) (bool, error)
}

type SubscriptionService struct {
	DB              *gorm.DB
	SubscriptionDAO *dao.SubscriptionDAO
	UnsubscribeDAO  *dao.UnsubscribeRecordDAO
	UserDAO         *dao.Users
	Activity        IActivityService
}

// Subscribe 订阅作者
// 只能订阅 writer 角色；不能订阅自己；已有生效订阅时拒绝
// 旧的退订记录不复用，每次订阅都是新行
func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID uint64, subscriberName, authorName string) (*models.Subscription, error) {
	author, err := s.findAuthor(ctx, authorName)
	if err != nil {
		return nil, err
	}

	if !author.IsWriter() {
		return nil, response.NewError(response.CodeForbidden, "只能订阅作者")
	}
	if author.ID == subscriberID {
		return nil, response.NewError(response.CodeForbidden, "不能订阅自己")
	}

	active, err := s.SubscriptionDAO.GetActive(ctx, subscriberID, author.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, response.NewError(response.CodeConflict, fmt.Sprintf("已经订阅过 %s", author.Username))
	}

	subscription := &models.Subscription{
		SubscriberID: subscriberID,
		AuthorID:     author.ID,
		IsActive:     true,
	}
	if err := s.SubscriptionDAO.Create(ctx, subscription); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s 于 %s 订阅了 %s 的博客", subscriberName, FormatNow(), author.Username)
	if _, err := s.Activity.Record(ctx, &subscriberID, "订阅作者", "subscription", subscription.ID, description); err != nil {
		return nil, err
	}

	return subscription, nil
}

// Unsubscribe 退订作者
// 事务内完成：订阅置为失效 + 追加退订流水 + 追加审计流水，要么全部落库要么全部回滚
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriberID uint64, subscriberName, authorName string) (*models.UnsubscribeRecord, error) {
	author, err := s.findAuthor(ctx, authorName)
	if err != nil {
		return nil, err
	}

	active, err := s.SubscriptionDAO.GetActive(ctx, subscriberID, author.ID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, response.NewError(response.CodeNotFound, fmt.Sprintf("尚未订阅 %s，请先订阅", author.Username))
	}

	record := &models.UnsubscribeRecord{
		SubscriberID:   subscriberID,
		AuthorID:       author.ID,
		SubscriptionID: active.ID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Subscription{}).
			Where("id = ?", active.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("%s 于 %s 退订了 %s 的博客", subscriberName, FormatNow(), author.Username)
		entry := &models.ActivityLog{
			Action:      "退订作者",
			UserID:      &subscriberID,
			TargetKind:  "subscription",
			TargetID:    record.ID,
			Description: description,
			Status:      models.ActivityStatusSubmitted,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, subscriberID uint64, authorName string) (bool, error) {
	author, err := s.findAuthor(ctx, authorName)
	if err != nil {
		return false, err
	}
	active, err := s.SubscriptionDAO.GetActive(ctx, subscriberID, author.ID)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

func (s *SubscriptionService) findAuthor(ctx context.Context, authorName string) (*models.Users, error) {
	author, err := s.UserDAO.FindByUsername(ctx, authorName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewError(response.CodeNotFound, "没有该作者的博客")
		}
		return nil, err
	}
	return author, nil
}
