package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/repo/redis"
	"github.com/Xushengqwer/article_service/service"
	"github.com/Xushengqwer/article_service/testutil"
)

// fakePublisher 记录投递的事件 ID，failOn 命中时返回错误
type fakePublisher struct {
	published []uint64
	failOn    map[uint64]bool
}

func (p *fakePublisher) PublishOutboxEvent(_ context.Context, e *entities.OutboxEvent) error {
	if p.failOn[e.ID] {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, e.ID)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func seedEvents(t *testing.T, db *gorm.DB, repo mysql.OutboxRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.CreateEvent(ctx, db, &entities.OutboxEvent{
			AggregateID: "post-1",
			EventType:   "POST_UPDATED",
			Payload:     datatypes.JSON(`{}`),
		}))
	}
}

func TestOutboxRelay_AdvancesCursorUntilFailure(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	outboxRepo := mysql.NewOutboxRepository(db, logger)
	cursor := redis.NewOutboxCursor(client)
	ctx := context.Background()

	seedEvents(t, db, outboxRepo, 5)
	pub := &fakePublisher{failOn: map[uint64]bool{4: true}}
	relay := NewOutboxRelay(outboxRepo, cursor, pub, 2, 0, logger)

	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = relay.RelayOnce(ctx)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	pos, err := cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), pos)

	// 故障恢复后从游标处继续，失败的事件会被重投
	delete(pub.failOn, 4)
	n, err = relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, pub.published)

	// 中继只读 outbox，事件保留
	all, err := outboxRepo.ListEventsAfter(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestOutboxRelay_WaitsForLateCommits(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	outboxRepo := mysql.NewOutboxRepository(db, logger)
	cursor := redis.NewOutboxCursor(client)
	ctx := context.Background()

	now := time.Now()
	pub := &fakePublisher{}
	relay := NewOutboxRelay(outboxRepo, cursor, pub, 10, 10*time.Second, logger)
	relay.now = func() time.Time { return now }

	// 事务 B 先提交了 id=2，持有 id=1 的事务 A 尚未提交
	require.NoError(t, outboxRepo.CreateEvent(ctx, db, &entities.OutboxEvent{
		ID: 2, AggregateID: "post-b", EventType: "POST_CREATED", Payload: datatypes.JSON(`{}`), CreatedAt: now,
	}))
	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	pos, err := cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pos)

	require.NoError(t, outboxRepo.CreateEvent(ctx, db, &entities.OutboxEvent{
		ID: 1, AggregateID: "post-a", EventType: "POST_CREATED", Payload: datatypes.JSON(`{}`), CreatedAt: now.Add(-time.Millisecond),
	}))

	now = now.Add(11 * time.Second)
	n, err = relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint64{1, 2}, pub.published)
	pos, err = cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), pos)
}

func TestOutboxRelay_StopsAtUnsettledEvent(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	outboxRepo := mysql.NewOutboxRepository(db, logger)
	cursor := redis.NewOutboxCursor(client)
	ctx := context.Background()

	now := time.Now()
	for i, age := range []time.Duration{time.Minute, time.Second, time.Minute} {
		require.NoError(t, outboxRepo.CreateEvent(ctx, db, &entities.OutboxEvent{
			ID: uint64(i + 1), AggregateID: "post-1", EventType: "POST_UPDATED", Payload: datatypes.JSON(`{}`), CreatedAt: now.Add(-age),
		}))
	}
	pub := &fakePublisher{}
	relay := NewOutboxRelay(outboxRepo, cursor, pub, 10, 10*time.Second, logger)
	relay.now = func() time.Time { return now }

	// id=3 虽已沉淀，但排在未沉淀的 id=2 之后，本轮不投递
	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uint64{1}, pub.published)
	pos, err := cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), pos)
}

func TestOutboxRelay_StartAndStop(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	relay := NewOutboxRelay(mysql.NewOutboxRepository(db, logger), redis.NewOutboxCursor(client), &fakePublisher{}, 0, 0, logger)

	assert.Error(t, relay.Start("not a schedule"))
	require.NoError(t, relay.Start("@every 1h"))
	select {
	case <-relay.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("调度器未停止")
	}
}

func TestRankRefresher_RebuildsFromDatabase(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	_, client := testutil.NewTestRedis(t)
	ctx := context.Background()

	postRepo := mysql.NewPostRepository(db, logger)
	rank := redis.NewPostRankCache(client, logger)
	hot := service.NewHotPostService(db, postRepo, mysql.NewTagRepository(db, logger), rank, logger)

	for _, likes := range []int64{3, 9} {
		p := &entities.Post{AuthorID: "u", Title: "t", Visibility: enums.VisibilityPublic, Status: enums.StatusPublished, LikeCount: likes}
		require.NoError(t, postRepo.CreatePost(ctx, db, p))
	}

	refresher := NewRankRefresher(hot, 10, logger)
	refresher.run()

	ids, err := rank.GetTopPostIDs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	posts, err := postRepo.GetPostsByIDs(ctx, ids[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(9), posts[0].LikeCount)
}
