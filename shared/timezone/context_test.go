package timezone_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/shared/timezone"
)

func TestContextCarriage(t *testing.T) {
	tz, err := timezone.New("UTC")
	require.NoError(t, err)

	_, ok := timezone.FromContext(context.Background())
	assert.False(t, ok)

	ctx := timezone.NewContext(context.Background(), tz)

	got, ok := timezone.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, tz, got)

	_, ok = timezone.FromContext(timezone.NewContext(context.Background(), nil))
	assert.False(t, ok)
}
