package asset_test

import (
	"errors"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/stretchr/testify/assert"
)

func TestParseIDs(t *testing.T) {
	type testCase struct {
		Description string
		Input       string
		Expected    []string
		Duplicates  []string
		Err         bool
	}

	var testCases = []testCase{
		{Description: "single id", Input: "7", Expected: []string{"7"}},
		{Description: "trims spaces around ids", Input: " 7, 8 ,A-100", Expected: []string{"7", "8", "A-100"}},
		{Description: "rejects an empty token", Input: "7,,8", Err: true},
		{Description: "rejects empty input", Input: "  ", Err: true},
		{Description: "names a repeated id once", Input: "7,7,8", Duplicates: []string{"7"}, Err: true},
		{Description: "names every repeated id", Input: "7,8,7,8,7", Duplicates: []string{"7", "8"}, Err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := asset.ParseIDs(tc.Input)
			if !tc.Err {
				assert.NoError(t, err)
				assert.Equal(t, tc.Expected, got)
				return
			}
			var verr asset.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Nil(t, got)
			assert.Equal(t, tc.Duplicates, verr.IDs)
		})
	}
}

func TestCompareIDs(t *testing.T) {
	type testCase struct {
		Description string
		A, B        string
		Expected    int
	}

	var testCases = []testCase{
		{Description: "decimal ids compare by value", A: "9", B: "10", Expected: -1},
		{Description: "leading zeros keep the value", A: "010", B: "9", Expected: 1},
		{Description: "equal values fall back to bytes", A: "07", B: "7", Expected: -1},
		{Description: "decimal ids come before other ids", A: "100", B: "A-1", Expected: -1},
		{Description: "other ids compare bytewise", A: "B-1", B: "A-100", Expected: 1},
		{Description: "signs are not decimal", A: "-5", B: "3", Expected: 1},
		{Description: "overlong decimals compare bytewise", A: "1234567890123456789", B: "99", Expected: 1},
		{Description: "identical ids", A: "A-100", B: "A-100", Expected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, asset.CompareIDs(tc.A, tc.B))
		})
	}
}
