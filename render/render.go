// Package render draws QueryResults and Sessions for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"clementus360/glowup/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	codeStyle  = lipgloss.NewStyle().PaddingLeft(2)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Result writes nothing for the zero result.
func Result(w io.Writer, r types.QueryResult) error {
	switch r.Kind() {
	case types.ResultSuccess:
		_, err := fmt.Fprintln(w, codeStyle.Render(r.Payload().String()))
		return err
	case types.ResultFailure:
		var b strings.Builder
		b.WriteString(errorStyle.Render("Error: " + r.Message()))
		if raw := r.RawResponse(); raw != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Raw response:"))
			b.WriteString("\n")
			b.WriteString(codeStyle.Render(raw))
		}
		_, err := fmt.Fprintln(w, b.String())
		return err
	default:
		return nil
	}
}

func Session(w io.Writer, s types.Session) error {
	if !s.IsAuthenticated() {
		_, err := fmt.Fprintln(w, mutedStyle.Render("Session: "+s.Status.String()))
		return err
	}

	who := s.FullName
	if who == "" {
		who = s.Email
	}
	if who == "" {
		who = s.UserID
	}

	line := okStyle.Render("Signed in") + " as " + who
	if s.Email != "" && s.Email != who {
		line += " <" + s.Email + ">"
	}
	line += mutedStyle.Render(" (" + s.UserID + ")")
	_, err := fmt.Fprintln(w, line)
	return err
}
