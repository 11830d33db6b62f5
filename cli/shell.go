package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/google/shlex"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

const prompt = "assetkeeper> "

func shellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands against one long lived session",
		Long: heredoc.Doc(`
			Read commands line by line and run them against a single session, so
			that the cart, the search query and sorting persist between them.
			Type 'exit' or send EOF to leave.
		`),
		Example: heredoc.Doc(`
			$ assetkeeper shell
			assetkeeper> asset list --query camera
			assetkeeper> cart add A-100
			assetkeeper> checkout --email jane@example.com
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.Session(cmd.Context()); err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(cmd.OutOrStdout(), prompt)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "exit", "quit":
					return nil
				case "":
				default:
					if err := runLine(cmd, a, line, &scannerReader{sc: scanner}); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), term.Red(err.Error()))
					}
				}
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), prompt)
			}
			return scanner.Err()
		},
	}
}

func runLine(cmd *cobra.Command, a *app, line string, in io.Reader) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(cmd.OutOrStdout())
	root.SetErr(cmd.ErrOrStderr())
	return root.ExecuteContext(cmd.Context())
}

// scannerReader hands the lines following a shell command to prompts asked
// by that command.
type scannerReader struct {
	sc  *bufio.Scanner
	buf []byte
}

func (r *scannerReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		r.buf = append([]byte(r.sc.Text()), '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
