package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every config key can be set from the environment. Prefix the key
		with ASSETKEEPER_ and replace dots with underscores.

		ASSETKEEPER_LOG_LEVEL: debug, info, warn or error.

		ASSETKEEPER_STORE_DRIVER: sqlite, postgres or memory.

		ASSETKEEPER_STORE_SQLITE_PATH: path of the SQLite database file.

		ASSETKEEPER_STORE_POSTGRES_HOST, ASSETKEEPER_STORE_POSTGRES_PORT,
		ASSETKEEPER_STORE_POSTGRES_NAME, ASSETKEEPER_STORE_POSTGRES_USER,
		ASSETKEEPER_STORE_POSTGRES_PASSWORD: PostgreSQL connection.

		ASSETKEEPER_BORROWER_FIRST_NAME, ASSETKEEPER_BORROWER_LAST_NAME,
		ASSETKEEPER_BORROWER_EMAIL: default borrower for checkouts.

		ASSETKEEPER_LOAN_PERIOD_DAYS: length of a loan and of an extension.
	`),
}
