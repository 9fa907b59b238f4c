package cli

import (
	"errors"
	"strings"

	"clementus360/glowup/notify"
	"clementus360/glowup/render"

	"github.com/spf13/cobra"
)

var errQueryFailed = errors.New("query failed")

func newAskCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt...>",
		Short: "Send one prompt to the chat service and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := a.newOrchestrator(notify.NewTerminal(a.errOut))

			result, sent := o.Submit(cmd.Context(), strings.Join(args, " "))
			if !sent {
				return errors.New("prompt is empty")
			}
			if err := render.Result(a.out, result); err != nil {
				return err
			}
			if result.IsFailure() {
				return errQueryFailed
			}
			return nil
		},
	}
}
