package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goto/assetkeeper/cli"
	"github.com/goto/assetkeeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *cli.Config {
	return &cli.Config{
		LogLevel:       "error",
		LoanPeriodDays: 30,
		Store:          store.Config{Driver: store.DriverMemory},
	}
}

func run(t *testing.T, cfg *cli.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.New(cfg)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestShell(t *testing.T) {
	t.Run("keeps the cart between lines", func(t *testing.T) {
		script := strings.Join([]string{
			`asset add 1,2 --name Camera --location "Shelf A"`,
			`cart add 1`,
			`cart list`,
			`checkout --first-name Jane --last-name Doe --email jane@example.com --comment "field trip"`,
			`asset list -o json`,
			`exit`,
		}, "\n")

		stdout, stderr, err := run(t, memoryConfig(), script, "shell")

		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, "Added 2 assets")
		assert.Contains(t, stdout, "1 items in cart")
		assert.Contains(t, stdout, "1 item was checked out")
		assert.Contains(t, stdout, `"state": "Requested"`)
		assert.Contains(t, stdout, `"comment": "field trip"`)
	})

	t.Run("reports errors and carries on", func(t *testing.T) {
		script := strings.Join([]string{
			`asset add 7,7,8 --name Lens --location Closet`,
			`asset approve 9`,
			`asset add 8 --name Lens --location Closet`,
		}, "\n")

		stdout, stderr, err := run(t, memoryConfig(), script, "shell")

		require.NoError(t, err)
		assert.Contains(t, stderr, "non-unique asset identifiers")
		assert.Contains(t, stderr, "9")
		assert.Contains(t, stdout, "Added asset 8")
	})

	t.Run("asks before deleting", func(t *testing.T) {
		script := strings.Join([]string{
			`asset add 1 --name Camera --location Shelf`,
			`asset delete 1`,
			`n`,
			`asset delete 1`,
			`y`,
			`asset list`,
		}, "\n")

		stdout, stderr, err := run(t, memoryConfig(), script, "shell")

		require.NoError(t, err)
		assert.Contains(t, stderr, "cancelled")
		assert.Contains(t, stdout, "Delete Camera (1)? [y/N]")
		assert.Contains(t, stdout, "Deleted Camera (1)")
	})
}

func TestCheckoutNeedsBorrower(t *testing.T) {
	script := strings.Join([]string{
		`asset add 1 --name Camera --location Shelf`,
		`checkout 1`,
	}, "\n")

	_, stderr, err := run(t, memoryConfig(), script, "shell")

	require.NoError(t, err)
	assert.Contains(t, stderr, "borrower is incomplete")
}

func TestCheckoutUsesConfiguredBorrower(t *testing.T) {
	cfg := memoryConfig()
	cfg.Borrower.FirstName = "Jane"
	cfg.Borrower.LastName = "Doe"
	cfg.Borrower.Email = "jane@example.com"
	script := strings.Join([]string{
		`asset add 1,2 --name Camera --location Shelf`,
		`checkout 1 2`,
		`history`,
	}, "\n")

	stdout, stderr, err := run(t, cfg, script, "shell")

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "2 items were checked out")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, memoryConfig(), "", "version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Version information not available")
}

func TestConfigList(t *testing.T) {
	stdout, _, err := run(t, memoryConfig(), "", "config", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "log_level: error")
	assert.Contains(t, stdout, "driver: memory")
}
