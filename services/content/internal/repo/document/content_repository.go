package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/repo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// defaultSeedLease bounds how long an unfinished claim blocks others.
	defaultSeedLease = time.Minute
	seedPollInterval = 200 * time.Millisecond
)

type contentRepository struct {
	db        *mongo.Database
	seedLease time.Duration
}

func NewContentRepository(db *mongo.Database) repo.Store {
	return &contentRepository{db: db, seedLease: defaultSeedLease}
}

func (r *contentRepository) users() *mongo.Collection   { return r.db.Collection("users") }
func (r *contentRepository) content() *mongo.Collection { return r.db.Collection("content") }
func (r *contentRepository) markers() *mongo.Collection { return r.db.Collection("seed_markers") }

// EnsureIndexes creates the lookup and feed indexes. It is safe to call on
// every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "is_creator", Value: 1}, {Key: "username", Value: 1}}},
		},
		"content": {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}}},
			{Keys: bson.D{{Key: "creator_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}
	for name, models := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return storeError("create indexes on "+name, err)
		}
	}
	return nil
}

func (r *contentRepository) ListContent(ctx context.Context, filter entity.ContentFilter, page entity.Page) ([]*entity.Content, error) {
	query := bson.M{}
	if filter.CreatorID != "" {
		query["creator_id"] = filter.CreatorID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: 1}}).
		SetSkip(int64(page.Skip))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := r.content().Find(ctx, query, opts)
	if err != nil {
		return nil, storeError("list content", err)
	}
	var docs []contentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("decode content", err)
	}

	items := make([]*entity.Content, len(docs))
	for i := range docs {
		items[i] = fromContentDocument(&docs[i])
	}
	return items, nil
}

func (r *contentRepository) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	var doc contentDocument
	if err := r.content().FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("content %s: %w", id, entity.ErrNotFound)
		}
		return nil, storeError("get content", err)
	}
	return fromContentDocument(&doc), nil
}

func (r *contentRepository) ListCreators(ctx context.Context) ([]*entity.Creator, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.users().Find(ctx, bson.M{"is_creator": true}, opts)
	if err != nil {
		return nil, storeError("list creators", err)
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("decode creators", err)
	}

	creators := make([]*entity.Creator, len(docs))
	for i := range docs {
		creators[i] = fromUserDocument(&docs[i])
	}
	return creators, nil
}

// SeedOnce claims the seed marker, writes the roster tagged with the
// claim's batch id and only then marks the claim complete. A caller that
// finds an incomplete claim waits for it; one that finds an abandoned
// claim takes it over and removes the partial batch first. Only a complete
// marker reports "already seeded".
func (r *contentRepository) SeedOnce(ctx context.Context, creators []*entity.Creator, content []*entity.Content) (bool, error) {
	batch := uuid.New().String()
	claimed, err := r.claimMarker(ctx, batch)
	if err != nil || !claimed {
		return false, err
	}

	existing, err := r.content().CountDocuments(ctx, bson.D{})
	if err != nil {
		r.releaseMarker(batch)
		return false, storeError("count content", err)
	}
	if existing > 0 {
		if err := r.completeMarker(ctx, batch); err != nil {
			r.releaseMarker(batch)
			return false, err
		}
		return false, nil
	}

	if len(creators) > 0 {
		docs := make([]interface{}, len(creators))
		for i, c := range creators {
			doc := toUserDocument(c)
			doc.SeedBatch = batch
			docs[i] = doc
		}
		if _, err := r.users().InsertMany(ctx, docs); err != nil {
			r.releaseMarker(batch)
			return false, storeError("insert creators", err)
		}
	}

	if len(content) > 0 {
		docs := make([]interface{}, len(content))
		for i, c := range content {
			doc := toContentDocument(c)
			doc.SeedBatch = batch
			docs[i] = doc
		}
		if _, err := r.content().InsertMany(ctx, docs); err != nil {
			r.releaseMarker(batch)
			return false, storeError("insert content", err)
		}
	}

	if err := r.completeMarker(ctx, batch); err != nil {
		r.releaseMarker(batch)
		return false, err
	}
	return true, nil
}

// claimMarker returns true when batch now owns the marker and false when a
// completed seed already exists.
func (r *contentRepository) claimMarker(ctx context.Context, batch string) (bool, error) {
	for {
		now := time.Now().UTC()
		marker := seedMarkerDocument{
			Name:      repo.SeedMarkerName,
			Batch:     batch,
			ClaimedAt: now,
			CreatedAt: now.Format(isoLayout),
		}
		_, err := r.markers().InsertOne(ctx, marker)
		if err == nil {
			return true, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return false, storeError("claim seed marker", err)
		}

		var current seedMarkerDocument
		if err := r.markers().FindOne(ctx, bson.M{"_id": repo.SeedMarkerName}).Decode(&current); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// released between our insert and read
				continue
			}
			return false, storeError("read seed marker", err)
		}

		switch current.state(now, r.seedLease) {
		case markerComplete:
			return false, nil
		case markerAbandoned:
			took, err := r.takeOverMarker(ctx, current.Batch, batch, now)
			if err != nil || took {
				return took, err
			}
		case markerInProgress:
			select {
			case <-ctx.Done():
				return false, storeError("wait for seed in progress", ctx.Err())
			case <-time.After(seedPollInterval):
			}
		}
	}
}

// takeOverMarker moves an abandoned claim to batch and deletes whatever the
// previous claimant managed to write. Only one contender wins the update.
func (r *contentRepository) takeOverMarker(ctx context.Context, previous, batch string, now time.Time) (bool, error) {
	res, err := r.markers().UpdateOne(ctx,
		bson.M{"_id": repo.SeedMarkerName, "batch": previous, "complete": false},
		bson.M{"$set": bson.M{"batch": batch, "claimed_at": now}},
	)
	if err != nil {
		return false, storeError("take over seed marker", err)
	}
	if res.ModifiedCount == 0 {
		return false, nil
	}
	if err := r.deleteBatch(ctx, previous); err != nil {
		return false, err
	}
	return true, nil
}

func (r *contentRepository) completeMarker(ctx context.Context, batch string) error {
	res, err := r.markers().UpdateOne(ctx,
		bson.M{"_id": repo.SeedMarkerName, "batch": batch},
		bson.M{"$set": bson.M{"complete": true}},
	)
	if err != nil {
		return storeError("complete seed marker", err)
	}
	if res.MatchedCount == 0 {
		return storeError("complete seed marker", errors.New("claim was taken over"))
	}
	return nil
}

func (r *contentRepository) deleteBatch(ctx context.Context, batch string) error {
	if _, err := r.content().DeleteMany(ctx, bson.M{"seed_batch": batch}); err != nil {
		return storeError("delete partial content", err)
	}
	if _, err := r.users().DeleteMany(ctx, bson.M{"seed_batch": batch}); err != nil {
		return storeError("delete partial creators", err)
	}
	return nil
}

// releaseMarker undoes a failed attempt so the next call can retry at once.
// It uses a fresh context since the request context may be the reason the
// insert failed. If this also fails the claim expires after the lease.
func (r *contentRepository) releaseMarker(batch string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.deleteBatch(ctx, batch); err != nil {
		return
	}
	_, _ = r.markers().DeleteOne(ctx, bson.M{"_id": repo.SeedMarkerName, "batch": batch})
}

func (r *contentRepository) Counts(ctx context.Context) (int64, int64, error) {
	creators, err := r.users().CountDocuments(ctx, bson.M{"is_creator": true})
	if err != nil {
		return 0, 0, storeError("count creators", err)
	}
	content, err := r.content().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, 0, storeError("count content", err)
	}
	return creators, content, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", entity.ErrStoreUnavailable, op, err)
}
