package usecase

import "social-vault/services/content/internal/entity"

// AccessPolicy is the single place that decides whether a viewer may see an
// item's media. Entitlement-aware rules (active subscription to the creator,
// one-off purchase) belong in another implementation of this interface; the
// feed only ever calls Evaluate.
type AccessPolicy interface {
	Evaluate(viewer entity.Viewer, candidate entity.ContentProjection) entity.ContentProjection
}

// FreeTierPolicy locks every item that is not free, whoever asks.
// SubscriptionOnly and Price pass through untouched.
type FreeTierPolicy struct{}

func (FreeTierPolicy) Evaluate(_ entity.Viewer, candidate entity.ContentProjection) entity.ContentProjection {
	out := candidate
	out.IsLocked = !candidate.IsFree
	if out.IsLocked {
		out.MediaURLs = []string{}
		return out
	}
	out.MediaURLs = make([]string, len(candidate.MediaURLs))
	copy(out.MediaURLs, candidate.MediaURLs)
	return out
}
