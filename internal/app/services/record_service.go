package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// Store is the persistence contract shared by every record type.
// Get returns apperrors.ErrResourceNotFound on a miss; Insert sets the generated id on the entity.
type Store[E any, K comparable] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, key K) (*E, error)
	Insert(ctx context.Context, entity *E) (int64, error)
	Update(ctx context.Context, entity E) (int64, error)
	Delete(ctx context.Context, key K) (int64, error)
	Search(ctx context.Context, criterion string) ([]E, error)
}

// Mapper converts between an entity and its DTO
type Mapper[E, D any] interface {
	ToEntity(d D) E
	ToDTO(e E) D
	EntityID(e E) int64
}

// Transactor runs fn inside a transaction carried by its context
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Advisor produces advisory notes about a freshly stored entity
type Advisor[E any] interface {
	Advise(ctx context.Context, entity E) []string
}

// Guard rejects an entity before it reaches storage
type Guard[E any] func(entity E) error

// RecordService defines the operations offered for every record type
type RecordService[D any, K comparable] interface {
	ListAll(ctx context.Context) (dto.Result, error)
	Get(ctx context.Context, key K) (dto.Result, error)
	Add(ctx context.Context, d D, violations validation.Errors) (dto.Result, error)
	Update(ctx context.Context, d D, violations validation.Errors) (dto.Result, error)
	Delete(ctx context.Context, key K) (dto.Result, error)
	Search(ctx context.Context, criterion string) (dto.Result, error)
}

// RecordOption configures optional record service behaviour
type RecordOption[E any] func(*recordServiceOptions[E])

type recordServiceOptions[E any] struct {
	guard   Guard[E]
	advisor Advisor[E]
}

// WithGuard checks entities on add and update after field validation
func WithGuard[E any](guard Guard[E]) RecordOption[E] {
	return func(o *recordServiceOptions[E]) {
		o.guard = guard
	}
}

// WithAdvisor attaches advisory notes to successful adds and updates
func WithAdvisor[E any](advisor Advisor[E]) RecordOption[E] {
	return func(o *recordServiceOptions[E]) {
		o.advisor = advisor
	}
}

// recordServiceImpl implements the RecordService interface
type recordServiceImpl[E, D any, K comparable] struct {
	store    Store[E, K]
	mapper   Mapper[E, D]
	tx       Transactor
	messages config.Messages
	recordServiceOptions[E]
}

// NewRecordService creates a record service over store
func NewRecordService[E, D any, K comparable](
	store Store[E, K],
	mapper Mapper[E, D],
	tx Transactor,
	messages config.Messages,
	opts ...RecordOption[E],
) RecordService[D, K] {
	s := &recordServiceImpl[E, D, K]{
		store:    store,
		mapper:   mapper,
		tx:       tx,
		messages: messages,
	}
	for _, opt := range opts {
		opt(&s.recordServiceOptions)
	}
	return s
}

// ListAll returns every record in storage order
func (s *recordServiceImpl[E, D, K]) ListAll(ctx context.Context) (dto.Result, error) {
	entities, err := s.store.List(ctx)
	if err != nil {
		return dto.Result{}, fmt.Errorf("failed to list records: %w", err)
	}
	return dto.NewResult(http.StatusOK, s.messages.GetAll, s.toDTOs(entities)), nil
}

// Get returns the record with the given key
func (s *recordServiceImpl[E, D, K]) Get(ctx context.Context, key K) (dto.Result, error) {
	entity, err := s.store.Get(ctx, key)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return s.notFound(), nil
		}
		return dto.Result{}, fmt.Errorf("failed to get record %v: %w", key, err)
	}
	return dto.NewResult(http.StatusOK, fmt.Sprintf("%s %v", s.messages.Get, key), s.mapper.ToDTO(*entity)), nil
}

// Add stores a new record and returns it with its generated id
func (s *recordServiceImpl[E, D, K]) Add(ctx context.Context, d D, violations validation.Errors) (dto.Result, error) {
	if violations.HasErrors() {
		return s.invalid([]string(violations)), nil
	}

	entity := s.mapper.ToEntity(d)
	if rejected, ok := s.checkGuard(entity); ok {
		return rejected, nil
	}

	var notes []string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		id, err := s.store.Insert(ctx, &entity)
		if err != nil {
			return err
		}
		if id == 0 {
			return apperrors.ErrNoGeneratedID
		}
		notes = s.advise(ctx, entity)
		return nil
	})
	if err != nil {
		return dto.Result{}, fmt.Errorf("failed to add record: %w", err)
	}

	return dto.NewResult(http.StatusCreated, s.messages.Add, s.mapper.ToDTO(entity)).WithWarnings(notes...), nil
}

// Update replaces the record identified by the DTO's id and echoes the DTO
func (s *recordServiceImpl[E, D, K]) Update(ctx context.Context, d D, violations validation.Errors) (dto.Result, error) {
	if violations.HasErrors() {
		return s.invalid([]string(violations)), nil
	}

	entity := s.mapper.ToEntity(d)
	if s.mapper.EntityID(entity) == 0 {
		return s.invalid(apperrors.ErrMissingID.Error()), nil
	}
	if rejected, ok := s.checkGuard(entity); ok {
		return rejected, nil
	}

	var (
		rows  int64
		notes []string
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.store.Update(ctx, entity)
		if err != nil || rows == 0 {
			return err
		}
		notes = s.advise(ctx, entity)
		return nil
	})
	if err != nil {
		return dto.Result{}, fmt.Errorf("failed to update record: %w", err)
	}
	if rows == 0 {
		return s.notFound(), nil
	}

	return dto.NewResult(http.StatusOK, s.messages.Update, d).WithWarnings(notes...), nil
}

// Delete removes the record with the given key
func (s *recordServiceImpl[E, D, K]) Delete(ctx context.Context, key K) (dto.Result, error) {
	var rows int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.store.Delete(ctx, key)
		return err
	})
	if err != nil {
		return dto.Result{}, fmt.Errorf("failed to delete record %v: %w", key, err)
	}
	if rows == 0 {
		return s.notFound(), nil
	}
	return dto.NewResult(http.StatusOK, s.messages.Delete, dto.EmptyBody), nil
}

// Search returns the records matching criterion
func (s *recordServiceImpl[E, D, K]) Search(ctx context.Context, criterion string) (dto.Result, error) {
	entities, err := s.store.Search(ctx, criterion)
	if err != nil {
		return dto.Result{}, fmt.Errorf("failed to search records: %w", err)
	}
	return dto.NewResult(http.StatusOK, s.messages.Search, s.toDTOs(entities)), nil
}

func (s *recordServiceImpl[E, D, K]) checkGuard(entity E) (dto.Result, bool) {
	if s.guard == nil {
		return dto.Result{}, false
	}
	if err := s.guard(entity); err != nil {
		return s.invalid(err.Error()), true
	}
	return dto.Result{}, false
}

func (s *recordServiceImpl[E, D, K]) advise(ctx context.Context, entity E) []string {
	if s.advisor == nil {
		return nil
	}
	return s.advisor.Advise(ctx, entity)
}

func (s *recordServiceImpl[E, D, K]) toDTOs(entities []E) []D {
	dtos := make([]D, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, s.mapper.ToDTO(e))
	}
	return dtos
}

func (s *recordServiceImpl[E, D, K]) invalid(body interface{}) dto.Result {
	return dto.NewResult(http.StatusBadRequest, s.messages.InvalidInput, body)
}

func (s *recordServiceImpl[E, D, K]) notFound() dto.Result {
	return dto.NewResult(http.StatusNotFound, s.messages.NotFound, dto.EmptyBody)
}
