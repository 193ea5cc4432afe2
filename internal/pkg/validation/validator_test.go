package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

type sampleRecord struct {
	ID       int64            `json:"sampleId"`
	Name     string           `json:"sampleName" validate:"required,max=45,alphanum_space"`
	Rank     *int             `json:"sampleRank" validate:"required"`
	Born     helpers.Date     `json:"dateOfBirth" validate:"omitempty,past"`
	Starts   helpers.DateTime `json:"time" validate:"required,future"`
	Location string           `json:"location" validate:"required,max=45,location"`
}

func newTestValidator(now time.Time) *Validator {
	v := New()
	v.now = func() time.Time { return now }
	return v
}

func intPtr(i int) *int { return &i }

func TestValidRecordHasNoErrors(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	v := newTestValidator(now)

	errs := v.Struct(sampleRecord{
		Name:     "Professor 2",
		Rank:     intPtr(2),
		Born:     helpers.NewDate(now.AddDate(-30, 0, 0)),
		Starts:   helpers.NewDateTime(now.Add(72 * time.Hour)),
		Location: "Room A1.2",
	})

	assert.False(t, errs.HasErrors())
	assert.Empty(t, errs)
}

func TestOptionalDateMayBeAbsent(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	v := newTestValidator(now)

	errs := v.Struct(sampleRecord{
		Name:     "Dean",
		Rank:     intPtr(1),
		Starts:   helpers.NewDateTime(now.Add(time.Hour)),
		Location: "Hall",
	})

	assert.Empty(t, errs)
}

func TestViolationsAreOrderedByField(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	v := newTestValidator(now)

	errs := v.Struct(sampleRecord{
		Name:     "",
		Born:     helpers.NewDate(now.AddDate(1, 0, 0)),
		Starts:   helpers.NewDateTime(now.Add(-time.Hour)),
		Location: "Room #1",
	})

	assert.True(t, errs.HasErrors())
	assert.Equal(t, Errors{
		"sampleName cannot be empty",
		"sampleRank cannot be null",
		"dateOfBirth cannot be in the future",
		"time cannot be in the past",
		"location can contain only " + CompiledPatterns["location"].Description,
	}, errs)
}

func TestMissingRequiredDateIsNull(t *testing.T) {
	v := newTestValidator(time.Now())

	errs := v.Struct(sampleRecord{Name: "Dean", Rank: intPtr(1), Location: "Hall"})

	assert.Equal(t, Errors{"time cannot be null"}, errs)
}

func TestMaxLength(t *testing.T) {
	v := newTestValidator(time.Now())

	errs := v.Struct(sampleRecord{
		Name:     "A very long rank name that exceeds the column size",
		Rank:     intPtr(1),
		Starts:   helpers.NewDateTime(time.Now().Add(time.Hour)),
		Location: "Hall",
	})

	assert.Equal(t, Errors{"sampleName cannot be longer than 45 characters"}, errs)
}
