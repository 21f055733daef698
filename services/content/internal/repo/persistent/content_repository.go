package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/model"
	"social-vault/services/content/internal/repo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) repo.Store {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListContent(ctx context.Context, filter entity.ContentFilter, page entity.Page) ([]*entity.Content, error) {
	var contentModels []model.ContentModel
	query := r.db.WithContext(ctx).Model(&model.ContentModel{})
	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	query = query.Order("created_at DESC").Order("id ASC").Offset(page.Skip)
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	if err := query.Find(&contentModels).Error; err != nil {
		return nil, storeError("list content", err)
	}

	items := make([]*entity.Content, len(contentModels))
	for i := range contentModels {
		items[i] = ToContentEntity(&contentModels[i])
	}
	return items, nil
}

func (r *contentRepository) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	var contentModel model.ContentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("content %s: %w", id, entity.ErrNotFound)
		}
		return nil, storeError("get content", err)
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) ListCreators(ctx context.Context) ([]*entity.Creator, error) {
	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).
		Where("is_creator = ?", true).
		Order("username ASC").
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, storeError("list creators", err)
	}

	creators := make([]*entity.Creator, len(userModels))
	for i := range userModels {
		creators[i] = ToCreatorEntity(&userModels[i])
	}
	return creators, nil
}

// SeedOnce claims the seed marker and writes the roster in one transaction.
// A second caller blocks on the marker's primary key until the first
// commits, then inserts nothing.
func (r *contentRepository) SeedOnce(ctx context.Context, creators []*entity.Creator, content []*entity.Content) (bool, error) {
	wrote := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := &model.SeedMarkerModel{Name: repo.SeedMarkerName, CreatedAt: time.Now().UTC()}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(marker)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var existing int64
		if err := tx.Model(&model.ContentModel{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		if len(creators) > 0 {
			users := make([]*model.UserModel, len(creators))
			for i, c := range creators {
				users[i] = ToUserModel(c)
			}
			if err := tx.CreateInBatches(users, insertBatchSize).Error; err != nil {
				return err
			}
		}

		if len(content) > 0 {
			items := make([]*model.ContentModel, len(content))
			for i, c := range content {
				items[i] = ToContentModel(c)
			}
			if err := tx.CreateInBatches(items, insertBatchSize).Error; err != nil {
				return err
			}
		}

		wrote = true
		return nil
	})
	if err != nil {
		return false, storeError("seed", err)
	}
	return wrote, nil
}

func (r *contentRepository) Counts(ctx context.Context) (int64, int64, error) {
	var creators, content int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.UserModel{}).Where("is_creator = ?", true).Count(&creators).Error; err != nil {
		return 0, 0, storeError("count creators", err)
	}
	if err := db.Model(&model.ContentModel{}).Count(&content).Error; err != nil {
		return 0, 0, storeError("count content", err)
	}
	return creators, content, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", entity.ErrStoreUnavailable, op, err)
}
