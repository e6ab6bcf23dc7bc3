package asset_test

import (
	"testing"

	"github.com/raystack/meridian/core/asset"
	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	t.Run("should parse MAJOR.MINOR", func(t *testing.T) {
		v, err := asset.ParseVersion("0.2")
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), v.Major())
		assert.Equal(t, uint64(2), v.Minor())
	})

	t.Run("should return error for a malformed version", func(t *testing.T) {
		_, err := asset.ParseVersion("not-a-version")
		assert.EqualError(t, err, "invalid version \"not-a-version\"")
	})
}

func TestIncreaseMinorVersion(t *testing.T) {
	type testCase struct {
		Version string
		Expect  string
	}

	for _, tc := range []testCase{
		{Version: asset.BaseVersion, Expect: "0.2"},
		{Version: "0.9", Expect: "0.10"},
		{Version: "2.14", Expect: "2.15"},
	} {
		t.Run(tc.Version, func(t *testing.T) {
			got, err := asset.IncreaseMinorVersion(tc.Version)
			assert.NoError(t, err)
			assert.Equal(t, tc.Expect, got)
		})
	}
}
