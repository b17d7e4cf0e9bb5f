package server

import (
	"Inkwell/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Blog         *handler.Blog
	Comment      *handler.Comment
	Reaction     *handler.Reaction
	Subscription *handler.Subscription
	Activity     *handler.Activity
	Profile      *handler.Profile
}
