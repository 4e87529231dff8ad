package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/myErrors"
)

func TestReactionTransition(t *testing.T) {
	like, dislike := enums.ReactionLike, enums.ReactionDislike
	tests := []struct {
		name      string
		existing  *enums.ReactionType
		action    enums.ReactionType
		wantNext  *enums.ReactionType
		wantDelta int64
	}{
		{"none + like", nil, like, &like, 1},
		{"none + dislike", nil, dislike, &dislike, 0},
		{"like + like", &like, like, nil, -1},
		{"dislike + dislike", &dislike, dislike, nil, 0},
		{"dislike + like", &dislike, like, &like, 1},
		{"like + dislike", &like, dislike, &dislike, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, delta := reactionTransition(tt.existing, tt.action)
			assert.Equal(t, tt.wantDelta, delta)
			if tt.wantNext == nil {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, *tt.wantNext, *next)
			}
		})
	}
}

func TestParseReactionAction(t *testing.T) {
	a, err := ParseReactionAction("")
	require.NoError(t, err)
	assert.Equal(t, enums.ReactionLike, a)

	a, err = ParseReactionAction(" dislike ")
	require.NoError(t, err)
	assert.Equal(t, enums.ReactionDislike, a)

	_, err = ParseReactionAction("LOVE")
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestToggleReaction_IdempotentPair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "pair"})

	r, err := f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LikeCount)
	require.NotNil(t, r.Reaction)
	assert.Equal(t, "LIKE", *r.Reaction)

	r, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.LikeCount)
	assert.Nil(t, r.Reaction)
	assert.Equal(t, int64(0), f.likeRows(t, p.ID))
}

func TestToggleReaction_SwitchArithmetic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "switch"})

	// 另一个用户先点赞，便于观察增减
	_, err := f.reactions.ToggleReaction(ctx, p.ID, "other", "LIKE")
	require.NoError(t, err)

	r, err := f.reactions.ToggleReaction(ctx, p.ID, "u1", "DISLIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LikeCount)

	r, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.LikeCount)
	assert.Equal(t, "LIKE", *r.Reaction)

	r, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "DISLIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LikeCount)
	assert.Equal(t, "DISLIKE", *r.Reaction)

	r, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "DISLIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LikeCount)
	assert.Nil(t, r.Reaction)
}

func TestToggleReaction_LikeCountMatchesRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "invariant"})

	steps := []struct{ user, action string }{
		{"a", "LIKE"}, {"b", "LIKE"}, {"c", "DISLIKE"}, {"a", "DISLIKE"},
		{"c", "LIKE"}, {"b", "LIKE"}, {"d", ""}, {"a", "LIKE"}, {"c", "DISLIKE"},
	}
	for _, st := range steps {
		r, err := f.reactions.ToggleReaction(ctx, p.ID, st.user, st.action)
		require.NoError(t, err)
		assert.Equal(t, f.likeRows(t, p.ID), r.LikeCount, "after %s %s", st.user, st.action)
	}
}

func TestToggleReaction_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "race"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := []string{"a", "b", "c", "d"}[i%4]
			_, _ = f.reactions.ToggleReaction(ctx, p.ID, user, "LIKE")
		}(i)
	}
	wg.Wait()

	got, err := f.postRepo.GetPostByID(ctx, f.db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, f.likeRows(t, p.ID), got.LikeCount)
}

func TestToggleReaction_WritesOutboxEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "evented"})

	_, err := f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	require.NoError(t, err)

	list := f.events(t, p.ID)
	require.Len(t, list, 2)
	assert.Equal(t, constant.EventPostReactionChanged, list[1].EventType)

	var payload events.ReactionPayload
	require.NoError(t, json.Unmarshal(list[1].Payload, &payload))
	assert.Equal(t, "u1", payload.UserID)
	assert.Nil(t, payload.Previous)
	require.NotNil(t, payload.Current)
	assert.Equal(t, "LIKE", *payload.Current)
	assert.Equal(t, int64(1), payload.LikeCount)
}

func TestToggleReaction_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "errs"})

	_, err := f.reactions.ToggleReaction(ctx, "missing", "u1", "LIKE")
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)

	_, err = f.reactions.ToggleReaction(ctx, p.ID, "", "LIKE")
	assert.ErrorIs(t, err, myErrors.ErrValidation)

	_, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "HEART")
	assert.ErrorIs(t, err, myErrors.ErrValidation)

	require.NoError(t, f.posts.DeletePost(ctx, p.ID))
	_, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestToggleReaction_UpdatesRank(t *testing.T) {
	f := newFixture(t, withRank())
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "ranked", Status: ptr(enums.StatusPublished)})

	_, err := f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	require.NoError(t, err)

	ids, err := f.rank.GetTopPostIDs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, ids)
}
