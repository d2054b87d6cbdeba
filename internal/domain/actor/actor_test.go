package actor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := WithTraceID(WithActor(context.Background(), Professional{UserID: 3, ProfessionalID: 9}), "trace-1")

	a, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(3), a.ID())
	assert.Equal(t, "professional", Role(a))
	assert.Equal(t, "trace-1", TraceID(ctx))

	p, ok := AsProfessional(a)
	assert.True(t, ok)
	assert.Equal(t, uint(9), p.ProfessionalID)
}

func TestEmptyContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, TraceID(context.Background()))
	assert.Equal(t, "anonymous", Role(nil))

	_, ok = AsProfessional(Client{UserID: 1})
	assert.False(t, ok)
}
