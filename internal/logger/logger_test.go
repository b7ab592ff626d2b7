package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestRequestIDFrom_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestFromCtx(t *testing.T) {
	Init("test")

	require.NotNil(t, FromCtx(context.Background()))
	require.NotNil(t, FromCtx(WithRequestID(context.Background(), "req-1")))
}
