package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/myErrors"
)

func TestCreatePost_WritesPostAndEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.taxonomy.EnsureDefaultCategories(ctx))
	cats, err := f.taxonomy.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	p, err := f.posts.CreatePost(ctx, &dto.CreatePostRequest{
		Title:      "  First post ",
		AuthorID:   "alice",
		ContentMD:  ptr("# hi"),
		CategoryID: &cats[0].ID,
		Tags:       []string{"go", "gin", "go"},
	})
	require.NoError(t, err)
	assert.Len(t, p.ID, 32)
	assert.Equal(t, "First post", p.Title)
	assert.Equal(t, string(enums.StatusDraft), p.Status)
	assert.Equal(t, string(enums.VisibilityPublic), p.Visibility)
	require.NotNil(t, p.Category)
	assert.Equal(t, cats[0].Name, p.Category.Name)
	require.Len(t, p.Tags, 2)
	assert.Equal(t, "gin", p.Tags[0].Name)

	list := f.events(t, p.ID)
	require.Len(t, list, 1)
	assert.Equal(t, constant.EventPostCreated, list[0].EventType)
	var payload events.PostPayload
	require.NoError(t, json.Unmarshal(list[0].Payload, &payload))
	assert.Equal(t, "alice", payload.AuthorID)
	assert.ElementsMatch(t, []string{"go", "gin"}, payload.Tags)

	assert.Equal(t, []string{"alice:" + constant.ActivityPostCreated}, f.notifier.calls)
}

func TestCreatePost_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreatePostRequest
	}{
		{"missing title", dto.CreatePostRequest{AuthorID: "a"}},
		{"blank title", dto.CreatePostRequest{Title: "   ", AuthorID: "a"}},
		{"missing author", dto.CreatePostRequest{Title: "t"}},
		{"unknown category", dto.CreatePostRequest{Title: "t", AuthorID: "a", CategoryID: ptr("nope")}},
		{"bad visibility", dto.CreatePostRequest{Title: "t", AuthorID: "a", Visibility: ptr(enums.Visibility("SECRET"))}},
		{"deleted status", dto.CreatePostRequest{Title: "t", AuthorID: "a", Status: ptr(enums.StatusDeleted)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.posts.CreatePost(ctx, &req)
			assert.ErrorIs(t, err, myErrors.ErrValidation)
		})
	}

	// 失败的创建不会留下任何行
	var posts, outbox int64
	require.NoError(t, f.db.Model(&entities.Post{}).Count(&posts).Error)
	require.NoError(t, f.db.Model(&entities.OutboxEvent{}).Count(&outbox).Error)
	assert.Zero(t, posts)
	assert.Zero(t, outbox)
}

func TestCreatePost_AuthorCheck(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, withUsers(staticUsers{known: map[string]bool{"alice": true}}))
	_, err := f.posts.CreatePost(ctx, &dto.CreatePostRequest{Title: "t", AuthorID: "alice"})
	require.NoError(t, err)
	_, err = f.posts.CreatePost(ctx, &dto.CreatePostRequest{Title: "t", AuthorID: "mallory"})
	assert.ErrorIs(t, err, myErrors.ErrValidation)

	down := newFixture(t, withUsers(staticUsers{err: myErrors.ErrCollaborator}))
	_, err = down.posts.CreatePost(ctx, &dto.CreatePostRequest{Title: "t", AuthorID: "alice"})
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestCreatePost_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.notifier.fail = true

	p, err := f.posts.CreatePost(context.Background(), &dto.CreatePostRequest{Title: "quiet", AuthorID: "a"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Len(t, f.notifier.calls, 1)
}

func TestGetPost_IncrementsViewCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "viewed", Tags: []string{"x"}})

	got, err := f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
	require.Len(t, got.Tags, 1)

	_, err = f.posts.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestGetPost_ConcurrentViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "hot"})

	const readers = 20
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.posts.GetPost(ctx, p.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	row, err := f.postRepo.GetPostByID(ctx, f.db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(readers), row.ViewCount)
}

func TestDeletePost_SoftAndIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createPost(t, &dto.CreatePostRequest{Title: "bye"})

	require.NoError(t, f.posts.DeletePost(ctx, p.ID))
	require.NoError(t, f.posts.DeletePost(ctx, p.ID))

	got, err := f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(enums.StatusDeleted), got.Status)

	assert.Equal(t, []string{constant.EventPostCreated, constant.EventPostDeleted}, eventTypes(f.events(t, p.ID)))

	assert.ErrorIs(t, f.posts.DeletePost(ctx, "missing"), myErrors.ErrRepoNotFound)
	_, err = f.posts.PatchPost(ctx, p.ID, &dto.PatchPostRequest{Title: ptr("again")})
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
	_, err = f.posts.ReplacePost(ctx, p.ID, &dto.ReplacePostRequest{Title: "again", AuthorID: "a"})
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestReplacePost_ResetsOptionalFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, err := f.taxonomy.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "기술"})
	require.NoError(t, err)

	p := f.createPost(t, &dto.CreatePostRequest{
		Title:      "orig",
		ContentMD:  ptr("body"),
		CategoryID: &cat.ID,
		Visibility: ptr(enums.VisibilityPrivate),
		Status:     ptr(enums.StatusPublished),
		Tags:       []string{"a", "b"},
	})

	got, err := f.posts.ReplacePost(ctx, p.ID, &dto.ReplacePostRequest{Title: "new", AuthorID: "author-2", Tags: []string{"c"}})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "author-2", got.AuthorID)
	assert.Nil(t, got.ContentMD)
	assert.Nil(t, got.CategoryID)
	assert.Equal(t, string(enums.VisibilityPublic), got.Visibility)
	assert.Equal(t, string(enums.StatusDraft), got.Status)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "c", got.Tags[0].Name)

	assert.Equal(t, []string{constant.EventPostCreated, constant.EventPostUpdated}, eventTypes(f.events(t, p.ID)))

	_, err = f.posts.ReplacePost(ctx, "missing", &dto.ReplacePostRequest{Title: "x", AuthorID: "a"})
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestPatchPost_OnlySuppliedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, err := f.taxonomy.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "일상"})
	require.NoError(t, err)
	p := f.createPost(t, &dto.CreatePostRequest{Title: "orig", ContentMD: ptr("body"), CategoryID: &cat.ID, Tags: []string{"keep"}})

	got, err := f.posts.PatchPost(ctx, p.ID, &dto.PatchPostRequest{Title: ptr("patched"), Status: ptr(enums.StatusPublished)})
	require.NoError(t, err)
	assert.Equal(t, "patched", got.Title)
	assert.Equal(t, string(enums.StatusPublished), got.Status)
	require.NotNil(t, got.ContentMD)
	assert.Equal(t, "body", *got.ContentMD)
	require.NotNil(t, got.CategoryID)
	require.Len(t, got.Tags, 1)

	// 空分类清除分类，空标签数组清空标签
	got, err = f.posts.PatchPost(ctx, p.ID, &dto.PatchPostRequest{CategoryID: ptr(""), Tags: []string{}})
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Empty(t, got.Tags)

	_, err = f.posts.PatchPost(ctx, p.ID, &dto.PatchPostRequest{CategoryID: ptr("nope")})
	assert.ErrorIs(t, err, myErrors.ErrValidation)

	_, err = f.posts.PatchPost(ctx, p.ID, &dto.PatchPostRequest{Title: ptr(" ")})
	assert.ErrorIs(t, err, myErrors.ErrValidation)

	list := f.events(t, p.ID)
	assert.Equal(t, []string{constant.EventPostCreated, constant.EventPostUpdated, constant.EventPostUpdated}, eventTypes(list))
	var payload events.PostPayload
	require.NoError(t, json.Unmarshal(list[1].Payload, &payload))
	assert.Equal(t, []string{"title", "status"}, payload.ChangedFields)
}

func TestListPosts_ClampsAndFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		f.createPost(t, &dto.CreatePostRequest{Title: "searchable golang", Status: ptr(enums.StatusPublished)})
	}
	f.createPost(t, &dto.CreatePostRequest{Title: "other", Visibility: ptr(enums.VisibilityUnlisted)})

	page, err := f.lists.ListPosts(ctx, &dto.ListPostsQuery{PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, constant.MaxPerPage, page.Meta.PerPage)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 1, page.Meta.Pages)

	page, err = f.lists.ListPosts(ctx, &dto.ListPostsQuery{Page: -3, PerPage: 2, Q: "golang"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 2, page.Meta.Pages)

	page, err = f.lists.ListPosts(ctx, &dto.ListPostsQuery{Visibility: "UNLISTED"})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "other", page.Posts[0].Title)
	assert.NotNil(t, page.Posts[0].Tags)

	_, err = f.lists.ListPosts(ctx, &dto.ListPostsQuery{Sort: "random"})
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestDevelopmentScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.createPost(t, &dto.CreatePostRequest{Title: "dev", AuthorID: "anyone", Status: ptr(enums.StatusPublished)})

	r, err := f.reactions.ToggleReaction(ctx, p.ID, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.LikeCount)

	got, err := f.posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikeCount)
	assert.Equal(t, int64(1), got.ViewCount)

	page, err := f.lists.ListPosts(ctx, &dto.ListPostsQuery{Sort: "popular"})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)

	require.NoError(t, f.posts.DeletePost(ctx, p.ID))
	_, err = f.reactions.ToggleReaction(ctx, p.ID, "u1", "LIKE")
	assert.True(t, errors.Is(err, myErrors.ErrRepoNotFound))
}
