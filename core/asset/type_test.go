package asset_test

import (
	"testing"

	"github.com/raystack/meridian/core/asset"
	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "table", asset.TypeTable.String())
	assert.Equal(t, "job", asset.TypeJob.String())
	assert.Equal(t, "dashboard", asset.TypeDashboard.String())
	assert.Equal(t, "topic", asset.TypeTopic.String())
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range asset.AllSupportedTypes {
		t.Run(typ.String(), func(t *testing.T) {
			assert.True(t, typ.IsValid())
		})
	}

	t.Run("random", func(t *testing.T) {
		assert.False(t, asset.Type("random").IsValid())
	})
}
