package identity

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"clementus360/glowup/types"
)

// PromptBridge is the terminal rendition of the native sign-in sheet: the
// user pastes the identity token issued by Apple. An empty answer dismisses
// the prompt.
type PromptBridge struct {
	in       *bufio.Reader
	out      io.Writer
	scopes   []Scope
	fullName *types.PersonName
	email    string
}

type Option func(*PromptBridge)

// WithFullName supplies the name Apple shares on first authorization.
func WithFullName(given, family string) Option {
	return func(b *PromptBridge) {
		name := types.PersonName{Given: strings.TrimSpace(given), Family: strings.TrimSpace(family)}
		if name.String() == "" {
			b.fullName = nil
			return
		}
		b.fullName = &name
	}
}

func WithEmail(email string) Option {
	return func(b *PromptBridge) {
		b.email = strings.TrimSpace(email)
	}
}

func WithScopes(scopes ...Scope) Option {
	return func(b *PromptBridge) {
		b.scopes = withRequiredScopes(scopes)
	}
}

// NewPromptBridge reads from in and writes prompts to out. Pass the same
// *bufio.Reader the caller uses for other input so no bytes are lost.
func NewPromptBridge(in io.Reader, out io.Writer, opts ...Option) *PromptBridge {
	b := &PromptBridge{
		in:     bufio.NewReader(in),
		out:    out,
		scopes: withRequiredScopes(nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *PromptBridge) Scopes() []Scope {
	return append([]Scope(nil), b.scopes...)
}

func (b *PromptBridge) RequestCredential(ctx context.Context) (types.IdentityCredential, error) {
	if err := ctx.Err(); err != nil {
		return types.IdentityCredential{}, types.ErrCanceled
	}

	scopes := make([]string, len(b.scopes))
	for i, s := range b.scopes {
		scopes[i] = string(s)
	}
	fmt.Fprintf(b.out, "Sign in with Apple (requesting %s)\n", strings.Join(scopes, ", "))
	fmt.Fprint(b.out, "Identity token (leave empty to cancel): ")

	line, err := b.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return types.IdentityCredential{}, &types.ProviderError{Detail: "reading identity token", Err: err}
	}
	if ctx.Err() != nil {
		return types.IdentityCredential{}, types.ErrCanceled
	}

	token := strings.TrimSpace(line)
	if token == "" {
		return types.IdentityCredential{}, types.ErrCanceled
	}

	claims, err := parseIdentityToken(token)
	if err != nil {
		return types.IdentityCredential{}, &types.ProviderError{Detail: "identity token rejected", Err: err}
	}

	cred := types.IdentityCredential{
		IdentityToken: token,
		User:          claims.Subject,
		Email:         b.email,
	}
	if cred.Email == "" {
		cred.Email = claims.Email
	}
	if b.fullName != nil {
		name := *b.fullName
		cred.FullName = &name
	}
	return cred, nil
}
