package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-vault/services/content/internal/entity"
)

func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// classifyStoreError leaves typed errors alone and reports anything else,
// deadline expiry included, as the store being unavailable.
func classifyStoreError(err error) error {
	if err == nil ||
		errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrStoreUnavailable) ||
		errors.Is(err, entity.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
}
