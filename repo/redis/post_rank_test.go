package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/testutil"
)

func TestPostRankCache_EmptyIsMiss(t *testing.T) {
	_, client := testutil.NewTestRedis(t)
	cache := NewPostRankCache(client, testutil.NewLogger(t))

	_, err := cache.GetTopPostIDs(context.Background(), 10)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestPostRankCache_UpdateAndRead(t *testing.T) {
	_, client := testutil.NewTestRedis(t)
	cache := NewPostRankCache(client, testutil.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, cache.UpdateLikeScore(ctx, "a", 3))
	require.NoError(t, cache.UpdateLikeScore(ctx, "b", 7))
	require.NoError(t, cache.UpdateLikeScore(ctx, "c", 5))
	require.NoError(t, cache.UpdateLikeScore(ctx, "a", 9))

	ids, err := cache.GetTopPostIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, cache.RemovePost(ctx, "a"))
	ids, err = cache.GetTopPostIDs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids)
}

func TestPostRankCache_Rebuild(t *testing.T) {
	mr, client := testutil.NewTestRedis(t)
	cache := NewPostRankCache(client, testutil.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, cache.UpdateLikeScore(ctx, "stale", 100))
	require.NoError(t, cache.RebuildRank(ctx, []*entities.Post{
		{ID: "x", LikeCount: 1},
		{ID: "y", LikeCount: 2},
	}))

	ids, err := cache.GetTopPostIDs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, ids)
	assert.False(t, mr.Exists(constant.LikeRankTempKey))

	require.NoError(t, cache.RebuildRank(ctx, nil))
	_, err = cache.GetTopPostIDs(ctx, 10)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestOutboxCursor(t *testing.T) {
	_, client := testutil.NewTestRedis(t)
	cursor := NewOutboxCursor(client)
	ctx := context.Background()

	id, err := cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	require.NoError(t, cursor.SetCursor(ctx, 42))
	id, err = cursor.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}
