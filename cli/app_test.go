package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/goto/assetkeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteClosesSessionOnFailure(t *testing.T) {
	ctx := context.Background()
	rootCmd, a := newCLI(&Config{
		LogLevel: "error",
		Store:    store.Config{Driver: store.DriverMemory},
	})

	_, err := a.Session(ctx)
	require.NoError(t, err)
	repo := a.repo

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"asset", "approve", "99"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	_, err = execute(ctx, rootCmd, a)
	assert.Error(t, err)

	assert.Nil(t, a.session)
	assert.Nil(t, a.repo)
	_, err = repo.ListAssets(ctx)
	assert.Error(t, err)
}
