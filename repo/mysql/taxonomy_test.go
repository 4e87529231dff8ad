package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/testutil"
)

func TestCategoryRepository_EnsureIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCategoryRepository(db, testutil.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.EnsureCategories(ctx, []string{"기술", "일상"}))
	require.NoError(t, repo.EnsureCategories(ctx, []string{"기술", "일상", "질문"}))

	list, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	c, err := repo.GetCategoryByName(ctx, "질문")
	require.NoError(t, err)
	got, err := repo.GetCategoryByID(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "질문", got.Name)

	_, err = repo.GetCategoryByID(ctx, db, "nope")
	assert.ErrorIs(t, err, myErrors.ErrRepoNotFound)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCategoryRepository(db, testutil.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateCategory(ctx, db, &entities.Category{Name: "dup"}))
	err := repo.CreateCategory(ctx, db, &entities.Category{Name: "dup"})
	require.Error(t, err)
	assert.True(t, myErrors.IsDuplicateKey(err))
}

func TestTagRepository_FindOrCreateAndReplace(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewTagRepository(db, testutil.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateTag(ctx, db, &entities.Tag{Name: "go"}))
	existing, err := repo.GetTagByName(ctx, "go")
	require.NoError(t, err)

	tags, err := repo.FindOrCreateTags(ctx, db, []string{"go", " gin ", "go", ""})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, existing.ID, tags[0].ID)
	assert.Equal(t, "gin", tags[1].Name)

	all, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	p := seedPost(t, db, "tagged", nil)
	other := seedPost(t, db, "untagged", nil)
	require.NoError(t, repo.ReplacePostTags(ctx, db, p.ID, []string{tags[0].ID, tags[1].ID}))

	byPost, err := repo.GetTagsByPostIDs(ctx, db, []string{p.ID, other.ID})
	require.NoError(t, err)
	require.Len(t, byPost[p.ID], 2)
	assert.Equal(t, "gin", byPost[p.ID][0].Name)
	assert.Equal(t, "go", byPost[p.ID][1].Name)
	assert.Empty(t, byPost[other.ID])

	require.NoError(t, repo.ReplacePostTags(ctx, db, p.ID, []string{tags[1].ID}))
	byPost, err = repo.GetTagsByPostIDs(ctx, db, []string{p.ID})
	require.NoError(t, err)
	require.Len(t, byPost[p.ID], 1)
	assert.Equal(t, "gin", byPost[p.ID][0].Name)

	require.NoError(t, repo.ReplacePostTags(ctx, db, p.ID, nil))
	byPost, err = repo.GetTagsByPostIDs(ctx, db, []string{p.ID})
	require.NoError(t, err)
	assert.Empty(t, byPost[p.ID])
}
