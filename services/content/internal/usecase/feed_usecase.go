package usecase

import (
	"context"
	"fmt"
	"time"

	"social-vault/pkg/config"
	"social-vault/pkg/logger"
	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/repo"
)

// MediaSigner rewrites a stored media reference into a URL a client can
// fetch. References it does not recognise are returned unchanged.
type MediaSigner interface {
	SignMediaURL(ref string) (string, error)
}

type FeedUseCase interface {
	GetFeed(ctx context.Context, viewer entity.Viewer, filter entity.ContentFilter, page entity.Page) ([]entity.ContentProjection, error)
	GetContent(ctx context.Context, viewer entity.Viewer, id string) (*entity.ContentProjection, error)
	GetCreatorContent(ctx context.Context, viewer entity.Viewer, creatorID string, page entity.Page) ([]entity.ContentProjection, error)
	ListCreators(ctx context.Context) ([]*entity.Creator, error)
}

type feedUseCase struct {
	store        repo.Store
	seeder       *Seeder
	policy       AccessPolicy
	signer       MediaSigner
	logger       *logger.Logger
	timeout      time.Duration
	defaultLimit int
	maxLimit     int
}

// NewFeedUseCase wires the feed pipeline. A nil policy falls back to
// FreeTierPolicy and a nil signer leaves media references as stored.
func NewFeedUseCase(store repo.Store, seeder *Seeder, policy AccessPolicy, signer MediaSigner, logger *logger.Logger, cfg *config.Config) FeedUseCase {
	if policy == nil {
		policy = FreeTierPolicy{}
	}
	return &feedUseCase{
		store:        store,
		seeder:       seeder,
		policy:       policy,
		signer:       signer,
		logger:       logger,
		timeout:      cfg.StoreTimeout,
		defaultLimit: cfg.FeedDefaultLimit,
		maxLimit:     cfg.FeedMaxLimit,
	}
}

func (uc *feedUseCase) GetFeed(ctx context.Context, viewer entity.Viewer, filter entity.ContentFilter, page entity.Page) ([]entity.ContentProjection, error) {
	page, err := uc.normalizePage(page)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	storeCtx, cancel := withStoreTimeout(ctx, uc.timeout)
	defer cancel()

	items, err := uc.store.ListContent(storeCtx, filter, page)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	feed := make([]entity.ContentProjection, 0, len(items))
	for _, item := range items {
		feed = append(feed, uc.compose(viewer, item))
	}
	return feed, nil
}

func (uc *feedUseCase) GetCreatorContent(ctx context.Context, viewer entity.Viewer, creatorID string, page entity.Page) ([]entity.ContentProjection, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", entity.ErrValidation)
	}
	return uc.GetFeed(ctx, viewer, entity.ContentFilter{CreatorID: creatorID}, page)
}

func (uc *feedUseCase) GetContent(ctx context.Context, viewer entity.Viewer, id string) (*entity.ContentProjection, error) {
	if id == "" {
		return nil, entity.ErrNotFound
	}

	if err := uc.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	storeCtx, cancel := withStoreTimeout(ctx, uc.timeout)
	defer cancel()

	item, err := uc.store.GetContent(storeCtx, id)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	projection := uc.compose(viewer, item)
	return &projection, nil
}

func (uc *feedUseCase) ListCreators(ctx context.Context) ([]*entity.Creator, error) {
	if err := uc.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	storeCtx, cancel := withStoreTimeout(ctx, uc.timeout)
	defer cancel()

	creators, err := uc.store.ListCreators(storeCtx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if creators == nil {
		creators = []*entity.Creator{}
	}
	return creators, nil
}

func (uc *feedUseCase) ensureSeeded(ctx context.Context) error {
	if uc.seeder == nil {
		return nil
	}
	if err := uc.seeder.EnsureSeeded(ctx); err != nil {
		uc.logger.Error("Failed to seed sample data: %v", err)
		return err
	}
	return nil
}

// normalizePage applies the default page size and clamps to the ceiling.
func (uc *feedUseCase) normalizePage(page entity.Page) (entity.Page, error) {
	if page.Skip < 0 {
		return page, fmt.Errorf("%w: skip must be non-negative", entity.ErrValidation)
	}
	if page.Limit < 0 {
		return page, fmt.Errorf("%w: limit must be positive", entity.ErrValidation)
	}
	if page.Limit == 0 {
		page.Limit = uc.defaultLimit
	}
	if uc.maxLimit > 0 && page.Limit > uc.maxLimit {
		page.Limit = uc.maxLimit
	}
	return page, nil
}

// compose runs the projector, the policy and the signer. The policy alone
// decides IsLocked; a locked projection never carries media whatever the
// policy left in it, and is never signed.
func (uc *feedUseCase) compose(viewer entity.Viewer, item *entity.Content) entity.ContentProjection {
	projection := uc.policy.Evaluate(viewer, Project(item))
	if projection.IsLocked {
		projection.MediaURLs = []string{}
		return projection
	}
	if uc.signer == nil {
		return projection
	}

	for i, ref := range projection.MediaURLs {
		signed, err := uc.signer.SignMediaURL(ref)
		if err != nil {
			uc.logger.Warn("Failed to sign media for content %s: %v", projection.ID, err)
			continue
		}
		projection.MediaURLs[i] = signed
	}
	return projection
}
