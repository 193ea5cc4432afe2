package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullMessageJoinsWarnings(t *testing.T) {
	r := NewResult(http.StatusCreated, "Entity added successfully", nil).
		WithWarnings("Student is not registered as a user!").
		WithWarnings("Student has taken more than 5 courses in single semester!")

	assert.Equal(t,
		"Entity added successfully WARNING: Student is not registered as a user! WARNING: Student has taken more than 5 courses in single semester!",
		r.FullMessage())
	assert.Equal(t, http.StatusCreated, r.Status)
}

func TestFullMessageWithoutWarnings(t *testing.T) {
	r := NewResult(http.StatusOK, "Entity deleted successfully", EmptyBody)
	assert.Equal(t, "Entity deleted successfully", r.FullMessage())
}

func TestEnvelopeRendersEmptyBodyAsString(t *testing.T) {
	env := NewResult(http.StatusNotFound, "Entity not found", nil).Envelope()

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Entity not found", decoded["message"])
	assert.Equal(t, "", decoded["responseBody"])
	assert.Greater(t, decoded["timeStamp"].(float64), float64(0))
}

func TestWithWarningsDoesNotAlias(t *testing.T) {
	base := NewResult(http.StatusOK, "ok", nil).WithWarnings("a")
	first := base.WithWarnings("b")
	second := base.WithWarnings("c")

	assert.Equal(t, []string{"a", "b"}, first.Warnings)
	assert.Equal(t, []string{"a", "c"}, second.Warnings)
	assert.False(t, NewResult(http.StatusBadRequest, "bad", nil).IsSuccess())
}
