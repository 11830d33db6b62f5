package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "assetkeeper config init" to initialize a new configuration file
	Run "assetkeeper help environment" for more information.

	Alternatively, make a "assetkeeper.yaml" file in the current directory from the example given
`))

	errNoBorrower = errors.New("borrower is incomplete: set --first-name, --last-name and --email or the borrower section of the config")
)
