// Package cli is the terminal shell around the session and chat flows.
package cli

import (
	"bufio"
	"io"
	"os"

	"clementus360/glowup/config"

	"github.com/spf13/cobra"
)

type app struct {
	settings config.Settings
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
}

// NewRootCommand builds the glowup command tree.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: bufio.NewReader(in), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "glowup",
		Short:         "Sign in with Apple and chat with the GlowUp coach",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			config.InitLogger()

			settings, err := config.Load()
			if err != nil {
				return err
			}
			a.settings = settings
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newSignInCommand(a),
		newAskCommand(a),
		newShellCommand(a),
	)
	return root
}

func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}
