package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/service"
)

var seedTags = []string{"go", "kafka", "redis", "mysql", "gin", "docker", "k8s", "review", "travel", "daily"}

// Seeder 通过服务层批量生成测试数据，帖子的 outbox 事件随之写入
type Seeder struct {
	Posts       service.PostService
	Reactions   service.ReactionService
	Taxonomy    service.TaxonomyService
	Logger      *core.ZapLogger
	Concurrency int
}

// SeedResult 汇总本次填充结果
type SeedResult struct {
	Created   int
	Failed    int
	Reactions int
}

// Seed 生成 numPosts 个帖子，每个帖子附带随机标签与若干表态。
// 相同 seed 产生相同的内容。
func (s *Seeder) Seed(ctx context.Context, numPosts int, seed int64) (SeedResult, error) {
	if err := s.Taxonomy.EnsureDefaultCategories(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("补齐默认分类失败: %w", err)
	}
	categories, err := s.Taxonomy.ListCategories(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("读取分类失败: %w", err)
	}

	// 请求在单个 goroutine 里预先生成，Faker 不是并发安全的
	faker := gofakeit.New(seed)
	requests := make([]*dto.CreatePostRequest, 0, numPosts)
	likers := make([][]string, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		content := faker.Paragraph(3, 5, 20, "\n\n")
		visibility := enums.VisibilityPublic
		if faker.Number(0, 9) == 0 {
			visibility = enums.VisibilityUnlisted
		}
		status := enums.StatusPublished
		if faker.Number(0, 4) == 0 {
			status = enums.StatusDraft
		}
		req := &dto.CreatePostRequest{
			Title:      faker.Sentence(faker.Number(3, 10)),
			ContentMD:  &content,
			AuthorID:   faker.UUID(),
			Visibility: &visibility,
			Status:     &status,
			Tags:       pickTags(faker, faker.Number(0, 3)),
		}
		if len(categories) > 0 {
			id := categories[faker.Number(0, len(categories)-1)].ID
			req.CategoryID = &id
		}
		requests = append(requests, req)

		users := make([]string, faker.Number(0, 5))
		for j := range users {
			users[j] = faker.Username()
		}
		likers = append(likers, users)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	var (
		mu     sync.Mutex
		result SeedResult
		wg     sync.WaitGroup
	)
	semaphore := make(chan struct{}, concurrency)
	for i, req := range requests {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, req *dto.CreatePostRequest) {
			defer wg.Done()
			defer func() { <-semaphore }()

			post, err := s.Posts.CreatePost(ctx, req)
			if err != nil {
				s.Logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", i+1, numPosts), zap.Error(err), zap.String("title", req.Title))
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return
			}
			reacted := 0
			for j, user := range likers[i] {
				action := string(enums.ReactionLike)
				if j%4 == 3 {
					action = string(enums.ReactionDislike)
				}
				if _, err := s.Reactions.ToggleReaction(ctx, post.ID, user, action); err != nil {
					s.Logger.Warn("生成表态失败", zap.String("postID", post.ID), zap.Error(err))
					continue
				}
				reacted++
			}
			mu.Lock()
			result.Created++
			result.Reactions += reacted
			mu.Unlock()
		}(i, req)
	}
	wg.Wait()

	s.Logger.Info("测试数据填充完毕",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Int("reactions", result.Reactions),
	)
	return result, nil
}

func pickTags(faker *gofakeit.Faker, n int) []string {
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		picked = append(picked, faker.RandomString(seedTags))
	}
	return picked
}
