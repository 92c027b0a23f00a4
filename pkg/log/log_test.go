package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	t.Run("development drops unknown fields", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		assert.True(t, keepField("report_id"))
		assert.True(t, keepField("report_cache"))
		assert.True(t, keepField("duration_ms"))
		assert.False(t, keepField("rows"))
	})

	t.Run("production keeps everything", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		assert.True(t, keepField("rows"))
	})
}
