package postgres_test

import (
	"testing"

	"github.com/raystack/meridian/internal/store/postgres"
	"github.com/stretchr/testify/assert"
)

func TestJSONMap(t *testing.T) {
	t.Run("return no error for valid type of value", func(t *testing.T) {
		value := []byte(`{"key1":"val1","key2":"val2"}`)
		m := postgres.JSONMap{}
		err := m.Scan(value)
		assert.NoError(t, err)
		s, err := m.Value()
		assert.Equal(t, string(value), s)
		assert.NoError(t, err)
		b, err := m.MarshalJSON()
		assert.NoError(t, err)
		err = m.UnmarshalJSON(b)
		assert.NoError(t, err)
	})

	t.Run("scan a NULL column into a nil map", func(t *testing.T) {
		m := postgres.JSONMap{"stale": "value"}
		err := m.Scan(nil)
		assert.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("return error for unsupported scan value", func(t *testing.T) {
		m := postgres.JSONMap{}
		err := m.Scan(42)
		assert.Error(t, err)
	})
}
