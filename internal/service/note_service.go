package service

import (
	"context"
	"strings"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	SetPinned(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, isPinned bool) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, queryText string) ([]*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, events.NoteCreated, note.Id, userId)
	return toNoteResponse(&note), nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.Title == "" && req.Content == "" && req.Tags == nil && req.IsPinned == nil {
		return nil, serverutils.BadRequest("No changes provided")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Note not found")
	}

	// Absent fields keep their value. Only isPinned can be lowered to a
	// zero value through this path.
	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}
	if req.Tags != nil {
		note.Tags = req.Tags
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, events.NoteUpdated, note.Id, userId)
	return toNoteResponse(note), nil
}

func (c *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (c *noteService) SetPinned(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, isPinned bool) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NotFound("Note not found")
	}

	// Unconditional write, even when the flag already holds the value.
	note.IsPinned = isPinned
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishActivity(ctx, events.NotePinned, note.Id, userId)
	return toNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	affected, err := uow.NoteRepository().DeleteOwned(ctx, noteId, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return serverutils.NotFound("Note not found")
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.publishActivity(ctx, events.NoteDeleted, noteId, userId)
	return nil
}

func (c *noteService) Search(ctx context.Context, userId uuid.UUID, queryText string) ([]*dto.NoteResponse, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, serverutils.BadRequest("Search query is required")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.NoteSearchQuery{Query: queryText},
	)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

// publishActivity is best-effort; the request never fails because the audit
// trail lagged.
func (c *noteService) publishActivity(ctx context.Context, eventType string, noteId, userId uuid.UUID) {
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"noteId": noteId,
			"userId": userId,
		},
		OccurredAt: time.Now(),
	}
	if err := c.publisherService.Publish(ctx, evt); err != nil {
		c.log.Warn("note", "failed to publish activity event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      n.Tags,
		IsPinned:  n.IsPinned,
		UserId:    n.UserId,
		CreatedOn: n.CreatedAt,
		UpdatedOn: n.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res
}
