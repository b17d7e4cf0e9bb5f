package types

// 反应状态机的三种结果
const (
	ReactionApplied = "reacted"
	ReactionRemoved = "removed"
	ReactionChanged = "changed"
)

type ReactionResult struct {
	Result   string `json:"result"` // reacted | removed | changed
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}
