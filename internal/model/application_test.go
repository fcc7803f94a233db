package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusReviewed, StatusInterview, StatusHired, StatusRejected} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus("Archived"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition_forward(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusReviewed))
	assert.True(t, CanTransition(StatusReviewed, StatusInterview))
	assert.True(t, CanTransition(StatusInterview, StatusHired))
}

func TestCanTransition_skippingStages(t *testing.T) {
	// An employer may hire straight from Pending.
	assert.True(t, CanTransition(StatusPending, StatusHired))
	assert.True(t, CanTransition(StatusPending, StatusInterview))
	assert.True(t, CanTransition(StatusReviewed, StatusHired))
}

func TestCanTransition_reject(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.True(t, CanTransition(StatusReviewed, StatusRejected))
	assert.True(t, CanTransition(StatusInterview, StatusRejected))
}

func TestCanTransition_terminalStates(t *testing.T) {
	assert.False(t, CanTransition(StatusHired, StatusReviewed))
	assert.False(t, CanTransition(StatusHired, StatusRejected))
	assert.False(t, CanTransition(StatusRejected, StatusPending))
	assert.False(t, CanTransition(StatusRejected, StatusHired))
}

func TestCanTransition_backwardAndSelf(t *testing.T) {
	assert.False(t, CanTransition(StatusReviewed, StatusPending))
	assert.False(t, CanTransition(StatusInterview, StatusReviewed))
	assert.False(t, CanTransition(StatusPending, StatusPending))
	assert.False(t, CanTransition(StatusInterview, StatusInterview))
}

func TestCanTransition_unknownStatus(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, "Archived"))
	assert.False(t, CanTransition("Archived", StatusReviewed))
}
