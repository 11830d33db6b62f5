package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	for _, valid := range []string{"2024-01-01", " 2024-02-29 ", "1999-12-31"} {
		t.Run("accepts "+valid, func(t *testing.T) {
			d, err := asset.ParseDate(valid)
			assert.NoError(t, err)
			assert.False(t, d.IsZero())
		})
	}
	for _, invalid := range []string{"", "---", "01/02/2024", "2024-13-01", "yesterday"} {
		t.Run("rejects "+invalid, func(t *testing.T) {
			_, err := asset.ParseDate(invalid)
			assert.Error(t, err)
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := asset.MustDate("2024-01-31")

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-31"`, string(b))

	var got asset.Date
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Equal(d))
}
