package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proptypes/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	attr := logger.Component("httpvalidate")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "httpvalidate", attr.Value.String())
}

func TestProp(t *testing.T) {
	attr := logger.Prop("user.name")
	assert.Equal(t, "prop", attr.Key)
	assert.Equal(t, "user.name", attr.Value.String())
}

func TestInvalidProps(t *testing.T) {
	attr := logger.InvalidProps([]string{"email", "age"})
	require.Equal(t, "invalid_props", attr.Key)
	assert.Equal(t, []string{"email", "age"}, attr.Value.Any())

	assert.True(t, logger.InvalidProps(nil).Equal(slog.Attr{}))
}
