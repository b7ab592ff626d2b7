package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogMailer(t *testing.T) {
	// Delivery is log-only; it must never fail a request.
	err := logMailer{}.SendPasswordReset(context.Background(), "rider@example.com", "tok-123")
	assert.NoError(t, err)
}
