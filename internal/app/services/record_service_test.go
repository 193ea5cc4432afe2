package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// memoryStore is an in-memory Store that records every call
type memoryStore[E any, K comparable] struct {
	items  []E
	nextID int64
	calls  []string
	err    error
	noID   bool
	key    func(E) K
	id     func(E) int64
	setID  func(*E, int64)
	match  func(E, string) bool
}

func (m *memoryStore[E, K]) List(ctx context.Context) ([]E, error) {
	m.calls = append(m.calls, "List")
	if m.err != nil {
		return nil, m.err
	}
	return append([]E{}, m.items...), nil
}

func (m *memoryStore[E, K]) Get(ctx context.Context, key K) (*E, error) {
	m.calls = append(m.calls, "Get")
	if m.err != nil {
		return nil, m.err
	}
	for _, item := range m.items {
		if m.key(item) == key {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *memoryStore[E, K]) Insert(ctx context.Context, entity *E) (int64, error) {
	m.calls = append(m.calls, "Insert")
	if m.err != nil {
		return 0, m.err
	}
	if m.noID {
		return 0, nil
	}
	m.nextID++
	m.setID(entity, m.nextID)
	m.items = append(m.items, *entity)
	return m.nextID, nil
}

func (m *memoryStore[E, K]) Update(ctx context.Context, entity E) (int64, error) {
	m.calls = append(m.calls, "Update")
	if m.err != nil {
		return 0, m.err
	}
	for i, item := range m.items {
		if m.id(item) == m.id(entity) {
			m.items[i] = entity
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryStore[E, K]) Delete(ctx context.Context, key K) (int64, error) {
	m.calls = append(m.calls, "Delete")
	if m.err != nil {
		return 0, m.err
	}
	for i, item := range m.items {
		if m.key(item) == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryStore[E, K]) Search(ctx context.Context, criterion string) ([]E, error) {
	m.calls = append(m.calls, "Search")
	if m.err != nil {
		return nil, m.err
	}
	found := []E{}
	for _, item := range m.items {
		if m.match(item, criterion) {
			found = append(found, item)
		}
	}
	return found, nil
}

// passthroughTx runs fn directly and counts how often it was asked to
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func newRankStore() *memoryStore[models.AcademicRank, int64] {
	return &memoryStore[models.AcademicRank, int64]{
		key:   func(r models.AcademicRank) int64 { return r.ID },
		id:    func(r models.AcademicRank) int64 { return r.ID },
		setID: func(r *models.AcademicRank, id int64) { r.ID = id },
		match: func(r models.AcademicRank, c string) bool {
			return strings.Contains(strings.ToLower(r.RankName), strings.ToLower(c))
		},
	}
}

func newSemesterStore() *memoryStore[models.Semester, string] {
	return &memoryStore[models.Semester, string]{
		key:   func(s models.Semester) string { return s.Code },
		id:    func(s models.Semester) int64 { return s.ID },
		setID: func(s *models.Semester, id int64) { s.ID = id },
		match: func(s models.Semester, c string) bool { return strings.Contains(s.Name, c) },
	}
}

func setupTestRankService() (RecordService[dto.AcademicRankDTO, int64], *memoryStore[models.AcademicRank, int64]) {
	store := newRankStore()
	svc := NewRecordService[models.AcademicRank, dto.AcademicRankDTO, int64](
		store, academicRankMapper{}, &passthroughTx{}, config.DefaultMessages())
	return svc, store
}

func setupTestSemesterService() (RecordService[dto.SemesterDTO, string], *memoryStore[models.Semester, string]) {
	store := newSemesterStore()
	svc := NewRecordService[models.Semester, dto.SemesterDTO, string](
		store, semesterMapper{}, &passthroughTx{}, config.DefaultMessages(),
		WithGuard[models.Semester](semesterGuard))
	return svc, store
}

func rankDTO(numeric int, name string) dto.AcademicRankDTO {
	return dto.AcademicRankDTO{NumericRank: intPtr(numeric), RankName: name}
}

func TestAddReturnsCreatedRecordWithID(t *testing.T) {
	svc, store := setupTestRankService()
	ctx := context.Background()

	result, err := svc.Add(ctx, rankDTO(1, "Professor"), nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, "Entity added successfully", result.Message)
	created := result.Body.(dto.AcademicRankDTO)
	assert.Equal(t, int64(1), created.RankID)
	assert.Equal(t, []string{"Insert"}, store.calls)
}

func TestRoundTripAndIdempotentRead(t *testing.T) {
	svc, _ := setupTestRankService()
	ctx := context.Background()

	added, err := svc.Add(ctx, rankDTO(2, "Associate Professor"), nil)
	require.NoError(t, err)
	created := added.Body.(dto.AcademicRankDTO)

	first, err := svc.Get(ctx, created.RankID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, created.RankID)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, first.Status)
	assert.Equal(t, created, first.Body)
	assert.Equal(t, first, second)
	assert.Equal(t, "Entity fetched successfully, id: 1", first.Message)
}

func TestValidationShortCircuitsStorage(t *testing.T) {
	svc, store := setupTestRankService()
	ctx := context.Background()
	violations := validation.Errors{"rankName cannot be empty"}

	added, err := svc.Add(ctx, rankDTO(1, ""), violations)
	require.NoError(t, err)
	updated, err := svc.Update(ctx, dto.AcademicRankDTO{RankID: 1}, violations)
	require.NoError(t, err)

	for _, result := range []dto.Result{added, updated} {
		assert.Equal(t, http.StatusBadRequest, result.Status)
		assert.Equal(t, []string{"rankName cannot be empty"}, result.Body)
	}
	assert.Empty(t, store.calls)
}

func TestNotFoundForUnknownKeys(t *testing.T) {
	svc, _ := setupTestRankService()
	ctx := context.Background()

	got, err := svc.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, dto.EmptyBody, got.Body)

	updated, err := svc.Update(ctx, dto.AcademicRankDTO{RankID: 42, NumericRank: intPtr(1), RankName: "Dean"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, updated.Status)

	deleted, err := svc.Delete(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, deleted.Status)
}

func TestDeletedRecordStaysNotFound(t *testing.T) {
	svc, _ := setupTestRankService()
	ctx := context.Background()

	added, err := svc.Add(ctx, rankDTO(3, "Lecturer"), nil)
	require.NoError(t, err)
	id := added.Body.(dto.AcademicRankDTO).RankID

	deleted, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, deleted.Status)
	assert.Equal(t, dto.EmptyBody, deleted.Body)

	for i := 0; i < 2; i++ {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, got.Status)
	}
}

func TestUpdateEchoesSubmittedDTO(t *testing.T) {
	svc, store := setupTestRankService()
	ctx := context.Background()

	_, err := svc.Add(ctx, rankDTO(1, "Professor"), nil)
	require.NoError(t, err)

	submitted := dto.AcademicRankDTO{RankID: 1, NumericRank: intPtr(1), RankName: "Full Professor"}
	result, err := svc.Update(ctx, submitted, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, submitted, result.Body)
	assert.Equal(t, "Full Professor", store.items[0].RankName)
}

func TestUpdateWithoutIDIsInvalid(t *testing.T) {
	svc, store := setupTestRankService()

	result, err := svc.Update(context.Background(), rankDTO(1, "Professor"), nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, apperrors.ErrMissingID.Error(), result.Body)
	assert.Empty(t, store.calls)
}

func TestAddWithoutGeneratedIDFails(t *testing.T) {
	svc, store := setupTestRankService()
	store.noID = true

	_, err := svc.Add(context.Background(), rankDTO(1, "Professor"), nil)
	assert.ErrorIs(t, err, apperrors.ErrNoGeneratedID)
}

func TestStorageErrorsPropagate(t *testing.T) {
	svc, store := setupTestRankService()
	boom := errors.New("connection reset")
	store.err = boom

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Add(context.Background(), rankDTO(1, "Professor"), nil)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestSearchAndListMapRecords(t *testing.T) {
	svc, _ := setupTestRankService()
	ctx := context.Background()

	for i, name := range []string{"Professor", "Associate Professor", "Assistant"} {
		_, err := svc.Add(ctx, rankDTO(i+1, name), nil)
		require.NoError(t, err)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Body, 3)

	found, err := svc.Search(ctx, "professor")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, found.Status)
	assert.Len(t, found.Body, 2)

	none, err := svc.Search(ctx, "dean")
	require.NoError(t, err)
	assert.Equal(t, []dto.AcademicRankDTO{}, none.Body)
}

func semesterDTO(code string, start, end time.Time) dto.SemesterDTO {
	return dto.SemesterDTO{
		SemesterID:        code,
		SemesterName:      "Fall",
		SemesterYear:      intPtr(start.Year()),
		SemesterStartTime: helpers.NewDate(start),
		SemesterEndTime:   helpers.NewDate(end),
	}
}

func TestSemesterOrdering(t *testing.T) {
	svc, store := setupTestSemesterService()
	ctx := context.Background()
	start := time.Date(2031, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		end    time.Time
		status int
	}{
		{"end before start", start.AddDate(0, 0, -1), http.StatusBadRequest},
		{"equal instants", start, http.StatusBadRequest},
		{"end after start", start.AddDate(0, 3, 0), http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Add(ctx, semesterDTO("2031F", start, tt.end), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, "semester end time cannot be before semester begin time", result.Body)
			}
		})
	}

	assert.Equal(t, []string{"Insert"}, store.calls)

	bad := semesterDTO("2031F", start, start)
	bad.EntryID = 1
	result, err := svc.Update(ctx, bad, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, []string{"Insert"}, store.calls)
}

func TestSemesterLookupByCode(t *testing.T) {
	svc, _ := setupTestSemesterService()
	ctx := context.Background()
	start := time.Date(2031, 9, 1, 0, 0, 0, 0, time.UTC)

	added, err := svc.Add(ctx, semesterDTO("2031F", start, start.AddDate(0, 4, 0)), nil)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "2031F")
	require.NoError(t, err)
	assert.Equal(t, added.Body, got.Body)
	assert.Equal(t, "Entity fetched successfully, id: 2031F", got.Message)
}
