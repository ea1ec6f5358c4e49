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

const collectionTasks = "tasks"

// TaskRepository persists tasks. There is no delete method: tasks are
// never removed in any flow.
type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return &domain.DataAccessError{Op: "create task", Err: err}
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, &domain.DataAccessError{Op: "find task", Err: err}
	}
	return &t, nil
}

// List returns tasks matching filter, newest first. An empty CreatedBy
// yields the unscoped "all" view.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CreatedBy != "" {
		query["created_by"] = filter.CreatedBy
	}

	cursor, err := r.col.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, &domain.DataAccessError{Op: "list tasks", Err: err}
	}
	defer cursor.Close(ctx)

	var tasks []*domain.Task
	for cursor.Next(ctx) {
		var t domain.Task
		if err := cursor.Decode(&t); err != nil {
			return nil, &domain.DataAccessError{Op: "decode task", Err: err}
		}
		tasks = append(tasks, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, &domain.DataAccessError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return &domain.DataAccessError{Op: "update task", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the scoped list queries.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
