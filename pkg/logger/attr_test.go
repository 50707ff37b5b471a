package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardstore/pkg/logger"
)

func TestError(t *testing.T) {
	t.Run("non-nil error", func(t *testing.T) {
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.Equal(t, "", logger.Error(nil).Key)
	})
}

func TestErrors(t *testing.T) {
	t.Run("skips nil errors", func(t *testing.T) {
		attr := logger.Errors(nil, errors.New("a"), nil, errors.New("b"))
		assert.Equal(t, "errors", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
	})

	t.Run("all nil yields empty attr", func(t *testing.T) {
		assert.Equal(t, "", logger.Errors(nil, nil).Key)
	})
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "key", logger.StorageKey("rows").Key)
	assert.Equal(t, "rows", logger.StorageKey("rows").Value.String())

	assert.Equal(t, "driver", logger.Driver("redis").Key)
	assert.Equal(t, "size", logger.RecordSize(42).Key)
	assert.Equal(t, "component", logger.Component("guard").Key)
}
