package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"clementus360/glowup/chat"
	"clementus360/glowup/identity"
	"clementus360/glowup/notify"
	"clementus360/glowup/render"
	"clementus360/glowup/session"
	"clementus360/glowup/types"

	"github.com/spf13/cobra"
)

const shellHelp = `Type a prompt and press enter to ask the coach.
  /signin   sign in with an Apple identity token
  /signout  sign out
  /whoami   show the current session
  /quit     leave the shell`

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell combining sign-in and chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

func (a *app) runShell(ctx context.Context) error {
	notifier := notify.NewTerminal(a.errOut)

	o := a.newOrchestrator(notifier)
	o.OnChange(func(s chat.State) {
		if s.Busy {
			fmt.Fprintln(a.out, "...")
		}
	})

	bridge := identity.NewPromptBridge(a.in, a.out)
	mgr, authErr := a.newSessionManager(bridge, notifier)
	if mgr != nil {
		unsubscribe := mgr.Subscribe(func(s types.Session) {
			render.Session(a.out, s)
		})
		defer unsubscribe()
		mgr.Bootstrap(ctx)
	}

	fmt.Fprintln(a.out, shellHelp)
	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		done := errors.Is(err, io.EOF)

		switch cmd := strings.TrimSpace(line); cmd {
		case "":
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(a.out, shellHelp)
		case "/signin", "/signout", "/whoami":
			if mgr == nil {
				fmt.Fprintf(a.out, "Sign-in unavailable: %v\n", authErr)
				break
			}
			a.runSessionCommand(ctx, mgr, cmd)
		default:
			if result, sent := o.Submit(ctx, line); sent {
				render.Result(a.out, result)
			}
		}

		if done {
			return nil
		}
	}
}

func (a *app) runSessionCommand(ctx context.Context, mgr *session.Manager, cmd string) {
	switch cmd {
	case "/signin":
		res, err := mgr.SignIn(ctx)
		switch {
		case err != nil:
			// already shown as a notification
		case res.Outcome == session.OutcomeCanceled:
			fmt.Fprintln(a.out, "Sign-in canceled")
		case res.Outcome == session.OutcomeAlreadySignedIn:
			render.Session(a.out, res.Session)
		}
	case "/signout":
		mgr.SignOut(ctx)
	case "/whoami":
		render.Session(a.out, mgr.CurrentSession())
	}
}
