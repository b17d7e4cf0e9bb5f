package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewBlogDAO,
	NewCommentDAO,
	NewReplyDAO,
	NewReactionDAO,
	NewActivityLogDAO,
	NewBlogActivityMapDAO,
	NewSubscriptionDAO,
	NewUnsubscribeRecordDAO,
)
