package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrymomot/docsedge/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.String("stage", "locale"), logger.Stage("locale"))
	assert.Equal(t, slog.String("path", "/ja"), logger.Path("/ja"))
	assert.Equal(t, slog.Int("status", 302), logger.Status(302))
	assert.Equal(t, slog.String("location", "/x"), logger.Location("/x"))
	assert.Equal(t, slog.String("locale", "ja"), logger.Locale("ja"))
	assert.Equal(t, slog.String("method", "GET"), logger.Method("GET"))
	assert.Equal(t, slog.String("component", "chain"), logger.Component("chain"))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, slog.Int("count", 3), logger.Count(3))
}
