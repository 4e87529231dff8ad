package constant

// Redis Key 相关常量
const (
	// LikeRankKey 是点赞热榜的 Key 名称。
	// Redis 类型: Sorted Set，成员为帖子 ID，分数为 like_count。
	// 点赞切换成功后增量写入，并由 RankRefresher 定时从数据库整体重建。
	LikeRankKey = "article:rank:like"

	// LikeRankTempKey 是重建热榜时使用的临时 Key，写满后 RENAME 覆盖 LikeRankKey。
	LikeRankTempKey = "article:rank:like:tmp"

	// OutboxRelayCursorKey 记录 outbox 中继已成功投递的最大事件 ID。
	// Redis 类型: String
	OutboxRelayCursorKey = "article:outbox:relay_cursor"
)
