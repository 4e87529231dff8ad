package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/dependencies"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/repo/redis"
	"github.com/Xushengqwer/article_service/testutil"
)

// fixture 组装一套基于内存 SQLite 的服务
type fixture struct {
	db         *gorm.DB
	postRepo   mysql.PostRepository
	outboxRepo mysql.OutboxRepository
	storage    *dependencies.LocalStorage
	rank       redis.PostRankCache
	notifier   *recordingNotifier

	posts     PostService
	lists     PostListService
	reactions ReactionService
	media     MediaService
	taxonomy  TaxonomyService
	hot       HotPostService
	comments  CommentCountService
}

type fixtureOption func(*fixtureDeps)

type fixtureDeps struct {
	users    dependencies.UserDirectory
	withRank bool
	outbox   *switchRecorder
}

// withOutboxSwitch 让服务通过 sw 写事件，测试可随时切换为失败
func withOutboxSwitch(sw *switchRecorder) fixtureOption {
	return func(d *fixtureDeps) { d.outbox = sw }
}

func withUsers(u dependencies.UserDirectory) fixtureOption {
	return func(d *fixtureDeps) { d.users = u }
}

func withRank() fixtureOption {
	return func(d *fixtureDeps) { d.withRank = true }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	logger := testutil.NewLogger(t)
	deps := &fixtureDeps{users: dependencies.NewBypassUserDirectory(logger)}
	for _, o := range opts {
		o(deps)
	}

	db := testutil.NewTestDB(t)
	storage, err := dependencies.NewLocalStorage(t.TempDir(), "/uploads", logger)
	require.NoError(t, err)

	postRepo := mysql.NewPostRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	reactionRepo := mysql.NewReactionRepository(logger)
	mediaRepo := mysql.NewMediaRepository(db, logger)
	outboxRepo := mysql.NewOutboxRepository(db, logger)
	var recorder OutboxRecorder = NewOutboxRecorder(outboxRepo)
	if deps.outbox != nil {
		deps.outbox.next = recorder
		recorder = deps.outbox
	}

	var rank redis.PostRankCache
	if deps.withRank {
		_, client := testutil.NewTestRedis(t)
		rank = redis.NewPostRankCache(client, logger)
	}
	notifier := &recordingNotifier{}

	return &fixture{
		db:         db,
		postRepo:   postRepo,
		outboxRepo: outboxRepo,
		storage:    storage,
		rank:       rank,
		notifier:   notifier,
		posts:      NewPostService(db, postRepo, categoryRepo, tagRepo, recorder, deps.users, notifier, logger),
		lists:      NewPostListService(db, postRepo, tagRepo, logger),
		reactions:  NewReactionService(db, postRepo, reactionRepo, recorder, rank, logger),
		media:      NewMediaService(db, postRepo, mediaRepo, recorder, storage, 1<<20, logger),
		taxonomy:   NewTaxonomyService(db, categoryRepo, tagRepo, logger),
		hot:        NewHotPostService(db, postRepo, tagRepo, rank, logger),
		comments:   NewCommentCountService(db, postRepo, logger),
	}
}

// createPost 以默认作者创建帖子
func (f *fixture) createPost(t *testing.T, req *dto.CreatePostRequest) *vo.PostVO {
	t.Helper()
	if req.AuthorID == "" {
		req.AuthorID = "author-1"
	}
	p, err := f.posts.CreatePost(context.Background(), req)
	require.NoError(t, err)
	return p
}

func (f *fixture) events(t *testing.T, aggregateID string) []*entities.OutboxEvent {
	t.Helper()
	list, err := f.outboxRepo.ListEventsByAggregate(context.Background(), aggregateID)
	require.NoError(t, err)
	return list
}

func (f *fixture) likeRows(t *testing.T, postID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&entities.PostReaction{}).
		Where("post_id = ? AND type = ?", postID, "LIKE").Count(&n).Error)
	return n
}

func eventTypes(list []*entities.OutboxEvent) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.EventType)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// switchRecorder 在 fail 为 true 时让事件写入失败，否则委托给真实的 outbox
type switchRecorder struct {
	next OutboxRecorder
	fail bool
}

func (r *switchRecorder) RecordEvent(ctx context.Context, tx *gorm.DB, aggregateID, eventType string, payload interface{}) error {
	if r.fail {
		return errors.New("outbox down")
	}
	return r.next.RecordEvent(ctx, tx, aggregateID, eventType, payload)
}

// recordingNotifier 记录收到的通知，可配置为失败
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

func (n *recordingNotifier) Notify(_ context.Context, userID, activityType string, _ map[string]interface{}) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, userID+":"+activityType)
	if n.fail {
		return errors.New("notification service down")
	}
	return nil
}

// staticUsers 只承认给定集合中的用户，err 非空时模拟用户服务不可用
type staticUsers struct {
	known map[string]bool
	err   error
}

func (u staticUsers) UserExists(_ context.Context, userID string) (bool, error) {
	if u.err != nil {
		return false, u.err
	}
	return u.known[userID], nil
}
