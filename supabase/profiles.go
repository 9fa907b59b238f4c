package supabase

import (
	"context"
	"fmt"

	"clementus360/glowup/config"
	"clementus360/glowup/types"
)

// UpsertProfile creates or replaces the profile row keyed by id. It runs as
// the signed-in user, so call it after Exchange.
func (e *Exchanger) UpsertProfile(ctx context.Context, profile types.Profile) error {
	if err := ctx.Err(); err != nil {
		return &types.ProfileWriteError{Err: err}
	}
	if profile.ID == "" {
		return &types.ProfileWriteError{Detail: "missing user ID"}
	}

	_, _, err := e.currentClient().From(config.ProfilesTable).
		Upsert(profile, "id", "minimal", "").
		Execute()
	if err != nil {
		return &types.ProfileWriteError{Detail: fmt.Sprintf("upsert into %s", config.ProfilesTable), Err: err}
	}
	return nil
}
