package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"PendingToProcessing", StatusPending, StatusProcessing, true},
		{"PendingToCancelled", StatusPending, StatusCancelled, true},
		{"PendingToCompleted", StatusPending, StatusCompleted, true},
		{"ProcessingToCompleted", StatusProcessing, StatusCompleted, true},
		{"ProcessingToCancelled", StatusProcessing, StatusCancelled, false},
		{"ProcessingToPending", StatusProcessing, StatusPending, false},
		{"CompletedToProcessing", StatusCompleted, StatusProcessing, false},
		{"CompletedToCancelled", StatusCompleted, StatusCancelled, false},
		{"CancelledToCompleted", StatusCancelled, StatusCompleted, false},
		{"SameStateIdempotent", StatusCompleted, StatusCompleted, true},
		{"SamePending", StatusPending, StatusPending, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestShippingStatusValid(t *testing.T) {
	assert.True(t, ShippingNotYet.Valid())
	assert.True(t, ShippingShipped.Valid())
	assert.False(t, ShippingStatus("delivered").Valid())
}
