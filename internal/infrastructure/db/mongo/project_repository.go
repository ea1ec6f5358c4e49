package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

const collectionProjects = "projects"

// ProjectRepository persists projects.
type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return &domain.DataAccessError{Op: "create project", Err: err}
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, &domain.DataAccessError{Op: "find project", Err: err}
	}
	return &p, nil
}

// List returns projects matching filter, soonest deadline first. An empty
// ClientEmail yields the unscoped view.
func (r *ProjectRepository) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientEmail != "" {
		query["client_email"] = filter.ClientEmail
	}

	cursor, err := r.col.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}}))
	if err != nil {
		return nil, &domain.DataAccessError{Op: "list projects", Err: err}
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var p domain.Project
		if err := cursor.Decode(&p); err != nil {
			return nil, &domain.DataAccessError{Op: "decode project", Err: err}
		}
		projects = append(projects, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, &domain.DataAccessError{Op: "list projects", Err: err}
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return &domain.DataAccessError{Op: "update project", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &domain.DataAccessError{Op: "delete project", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the client scope and deadline
// ordering.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_email", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
