// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/handler"
	"Inkwell/pkg/client"
	"Inkwell/pkg/database"
	"Inkwell/pkg/rocketmq"
	"Inkwell/pkg/server"
	"Inkwell/service"
)

// Injectors from wire.go:

func InitServer(cfg *config.Config) *server.AppProvider {
	db := database.NewDB(cfg)
	users := dao.NewUsers(db)
	activityLogDAO := dao.NewActivityLogDAO(db)
	blogActivityMapDAO := dao.NewBlogActivityMapDAO(db)
	blogDAO := dao.NewBlogDAO(db)
	activityService := &service.ActivityService{
		LogDAO:  activityLogDAO,
		MapDAO:  blogActivityMapDAO,
		BlogDAO: blogDAO,
	}
	authService := &service.AuthService{
		Config:   cfg,
		UserDAO:  users,
		Activity: activityService,
	}
	auth := &handler.Auth{
		Config:      cfg,
		AuthService: authService,
	}
	commentDAO := dao.NewCommentDAO(db)
	replyDAO := dao.NewReplyDAO(db)
	subscriptionDAO := dao.NewSubscriptionDAO(db)
	rocketMQConfig := config.ProvideRocketMQConfig(cfg)
	producer := rocketmq.InitProducer(rocketMQConfig)
	notifyService := &service.NotifyService{
		Producer: producer,
	}
	blogService := &service.BlogService{
		DB:              db,
		BlogDAO:         blogDAO,
		CommentDAO:      commentDAO,
		ReplyDAO:        replyDAO,
		SubscriptionDAO: subscriptionDAO,
		Activity:        activityService,
		Notify:          notifyService,
	}
	blog := &handler.Blog{
		Config:      cfg,
		BlogService: blogService,
	}
	commentService := &service.CommentService{
		DB:         db,
		BlogDAO:    blogDAO,
		CommentDAO: commentDAO,
		ReplyDAO:   replyDAO,
		Activity:   activityService,
	}
	comment := &handler.Comment{
		Config:         cfg,
		CommentService: commentService,
	}
	reactionDAO := dao.NewReactionDAO(db)
	redisClient := client.NewRedisClient(cfg)
	reactionService := &service.ReactionService{
		ReactionDAO: reactionDAO,
		BlogDAO:     blogDAO,
		CommentDAO:  commentDAO,
		ReplyDAO:    replyDAO,
		Activity:    activityService,
		Redis:       redisClient,
	}
	reaction := &handler.Reaction{
		Config:          cfg,
		ReactionService: reactionService,
	}
	unsubscribeRecordDAO := dao.NewUnsubscribeRecordDAO(db)
	subscriptionService := &service.SubscriptionService{
		DB:              db,
		SubscriptionDAO: subscriptionDAO,
		UnsubscribeDAO:  unsubscribeRecordDAO,
		UserDAO:         users,
		Activity:        activityService,
	}
	subscription := &handler.Subscription{
		Config:              cfg,
		SubscriptionService: subscriptionService,
	}
	activity := &handler.Activity{
		Config:          cfg,
		ActivityService: activityService,
	}
	profileService := &service.ProfileService{
		UserDAO:         users,
		BlogDAO:         blogDAO,
		SubscriptionDAO: subscriptionDAO,
		UnsubscribeDAO:  unsubscribeRecordDAO,
	}
	profile := &handler.Profile{
		Config:         cfg,
		ProfileService: profileService,
	}
	handlers := &server.Handlers{
		Auth:         auth,
		Blog:         blog,
		Comment:      comment,
		Reaction:     reaction,
		Subscription: subscription,
		Activity:     activity,
		Profile:      profile,
	}
	engine := server.NewGinEngine(handlers)
	appProvider := &server.AppProvider{
		Config: cfg,
		Engine: engine,
	}
	return appProvider
}
