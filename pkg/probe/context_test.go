package probe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/considonet/g-env/pkg/probe"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		report := probe.Report{IsTouchDevice: true, BrowserInfo: probe.BrowserInfo{IEVersion: 9}}
		ctx := probe.WithContext(context.Background(), report)

		got, ok := probe.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, report, got)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, ok := probe.FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()
		//nolint:staticcheck // nil context is part of the contract
		_, ok := probe.FromContext(nil)
		assert.False(t, ok)
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := probe.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	ctx := probe.WithContext(context.Background(), probe.Report{})
	attr, ok := extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "probe", attr.Key)
}
