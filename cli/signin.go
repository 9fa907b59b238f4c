package cli

import (
	"fmt"

	"clementus360/glowup/identity"
	"clementus360/glowup/notify"
	"clementus360/glowup/render"
	"clementus360/glowup/session"

	"github.com/spf13/cobra"
)

func newSignInCommand(a *app) *cobra.Command {
	var givenName, familyName, email string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Exchange an Apple identity token for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bridge := identity.NewPromptBridge(a.in, a.out,
				identity.WithFullName(givenName, familyName),
				identity.WithEmail(email),
			)
			mgr, err := a.newSessionManager(bridge, notify.NewTerminal(a.errOut))
			if err != nil {
				return err
			}

			mgr.Bootstrap(cmd.Context())
			res, err := mgr.SignIn(cmd.Context())
			if err != nil {
				return err
			}
			if res.Outcome == session.OutcomeCanceled {
				fmt.Fprintln(a.out, "Sign-in canceled")
				return nil
			}
			return render.Session(a.out, res.Session)
		},
	}

	cmd.Flags().StringVar(&givenName, "given-name", "", "given name shared by Apple on first sign-in")
	cmd.Flags().StringVar(&familyName, "family-name", "", "family name shared by Apple on first sign-in")
	cmd.Flags().StringVar(&email, "email", "", "email shared by Apple on first sign-in")
	return cmd
}
