package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

const collectionProfiles = "profiles"

// ProfileRepository persists application profiles, keyed by the auth user id.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

// Upsert writes the profile under its id. The _id key guarantees the
// one-profile-per-user invariant even if a sign-up is retried.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return &domain.DataAccessError{Op: "upsert profile", Err: err}
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Profile
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, &domain.DataAccessError{Op: "find profile", Err: err}
	}
	return &p, nil
}

// FindByIDs fetches the given profiles in one query. Missing ids are
// simply absent from the result map.
func (r *ProfileRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error) {
	result := make(map[string]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, &domain.DataAccessError{Op: "find profiles", Err: err}
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var p domain.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, &domain.DataAccessError{Op: "decode profile", Err: err}
		}
		result[p.ID] = &p
	}
	if err := cursor.Err(); err != nil {
		return nil, &domain.DataAccessError{Op: "find profiles", Err: err}
	}
	return result, nil
}

// ListByRole returns every profile carrying the role, ordered by name.
func (r *ProfileRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"role": string(role)},
		options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}))
	if err != nil {
		return nil, &domain.DataAccessError{Op: "list profiles", Err: err}
	}
	defer cursor.Close(ctx)

	var profiles []*domain.Profile
	for cursor.Next(ctx) {
		var p domain.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, &domain.DataAccessError{Op: "decode profile", Err: err}
		}
		profiles = append(profiles, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, &domain.DataAccessError{Op: "list profiles", Err: err}
	}
	return profiles, nil
}

func (r *ProfileRepository) UpdateFullName(ctx context.Context, id, fullName string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"full_name": fullName}})
	if err != nil {
		return &domain.DataAccessError{Op: "update profile", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes creates the role index used by the picker queries.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "role", Value: 1}},
	})
	return err
}
