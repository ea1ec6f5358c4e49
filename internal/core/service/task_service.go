package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// Cache scope keys. The "own" scope is suffixed with the caller's profile
// id so clients never see each other's cached lists.
const (
	scopeAll = "all"
	scopeOwn = "own:"
)

// TaskService implements role-scoped task queries and mutations, reading
// through the task-list cache and publishing change notifications after
// every write.
type TaskService struct {
	tasks    ports.TaskRepository
	profiles ports.ProfileRepository
	cache    ports.TaskCache
	feed     ports.ChangePublisher
	log      zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	profiles ports.ProfileRepository,
	cache ports.TaskCache,
	feed ports.ChangePublisher,
	log zerolog.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		profiles: profiles,
		cache:    cache,
		feed:     feed,
		log:      log,
	}
}

// ListTasks returns every task for admin/employee callers and only the
// caller's own tasks for clients, newest first, each joined with the
// creator and assignee display names.
func (s *TaskService) ListTasks(ctx context.Context, caller ports.Caller) ([]ports.TaskView, error) {
	scope := scopeAll
	filter := ports.ListTasksFilter{}
	if !caller.Role.CanManageTasks() {
		scope = scopeOwn + caller.ProfileID
		filter.CreatedBy = caller.ProfileID
	}

	cached, err := s.cache.Get(ctx, scope)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.Warn().Err(err).Str("scope", scope).Msg("task cache read failed, querying storage")
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, err := s.withNames(ctx, tasks)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, scope, views); err != nil {
		s.log.Warn().Err(err).Str("scope", scope).Msg("task cache write failed")
	}
	return views, nil
}

// CreateTask validates the boundary input and persists a new task. Only
// admins and employees may create tasks.
func (s *TaskService) CreateTask(ctx context.Context, caller ports.Caller, in ports.CreateTaskInput) (*domain.Task, error) {
	if !caller.Role.CanManageTasks() {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	status := domain.TaskPending
	if in.Status != "" {
		parsed, err := domain.ParseTaskStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	priority := domain.PriorityLow
	if in.Priority != "" {
		parsed, err := domain.ParseTaskPriority(in.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		Remarks:     in.Remarks,
		DueDate:     in.DueDate,
		CreatedBy:   caller.ProfileID,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.notify(ctx, domain.ChangeInsert, task.ID)
	s.log.Info().Str("task_id", task.ID).Str("created_by", caller.ProfileID).Msg("task created")
	return task, nil
}

// UpdateTask applies a partial update to status, remarks or assignment.
// Only the assignee or an admin may mutate a task; everyone else is
// rejected before storage is touched.
func (s *TaskService) UpdateTask(ctx context.Context, caller ports.Caller, taskID string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.CanBeUpdatedBy(caller.ProfileID, caller.Role) {
		return nil, domain.ErrForbidden
	}

	if in.Status != nil {
		parsed, err := domain.ParseTaskStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		task.Status = parsed
	}
	if in.Remarks != nil {
		task.Remarks = *in.Remarks
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to update task")
		return nil, err
	}

	s.notify(ctx, domain.ChangeUpdate, task.ID)
	return task, nil
}

// notify publishes a change notification. Publish failures never fail the
// mutation that triggered them; the cache simply stays warm until the next
// successful notification.
func (s *TaskService) notify(ctx context.Context, op domain.ChangeOp, taskID string) {
	if err := s.feed.PublishTaskChange(ctx, domain.TaskChange{Op: op, TaskID: taskID}); err != nil {
		s.log.Warn().Err(err).Str("task_id", taskID).Msg("failed to publish task change")
	}
}

// withNames joins tasks with the display names of their creators and
// assignees in a single profile lookup.
func (s *TaskService) withNames(ctx context.Context, tasks []*domain.Task) ([]ports.TaskView, error) {
	idSet := make(map[string]struct{}, len(tasks)*2)
	for _, t := range tasks {
		idSet[t.CreatedBy] = struct{}{}
		if t.AssignedTo != "" {
			idSet[t.AssignedTo] = struct{}{}
		}
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	profiles, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ports.TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := ports.TaskView{Task: *t}
		if p, ok := profiles[t.CreatedBy]; ok {
			view.CreatedByName = p.FullName
		}
		if p, ok := profiles[t.AssignedTo]; ok {
			view.AssignedToName = p.FullName
		}
		views = append(views, view)
	}
	return views, nil
}
