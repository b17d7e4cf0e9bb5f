package service

import (
	"encoding/json"
	"time"

	"Inkwell/pkg/log"
	mq "Inkwell/pkg/rocketmq"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopicBlogNotify 新博客通知主题，消费端负责真正的邮件投递
const TopicBlogNotify = "blog-notify"

var _ INotifyService = (*NotifyService)(nil)

type INotifyService interface {
	BlogPublished(authorName, blogTitle string, emails []string)
}

// BlogNotifyMessage 投递到 MQ 的通知消息体
type BlogNotifyMessage struct {
	MsgID     string    `json:"msg_id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Emails    []string  `json:"emails"`
	CreatedAt time.Time `json:"created_at"`
}

type NotifyService struct {
	Producer rocketmq.Producer
}

// BlogPublished 新博客发布后异步通知订阅者
// 投递失败只记日志，不影响发布流程
func (s *NotifyService) BlogPublished(authorName, blogTitle string, emails []string) {
	if len(emails) == 0 {
		return
	}

	msg := BlogNotifyMessage{
		MsgID:     uuid.NewString(),
		Author:    authorName,
		Title:     blogTitle,
		Emails:    emails,
		CreatedAt: time.Now(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.L.Error("marshal blog notify message", zap.Error(err))
		return
	}

	go func() {
		if err := mq.SendMsg(s.Producer, TopicBlogNotify, body); err != nil {
			log.L.Error("send blog notify message",
				zap.String("msg_id", msg.MsgID),
				zap.String("author", authorName),
				zap.Error(err),
			)
		}
	}()
}
