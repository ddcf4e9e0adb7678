package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/credgate/credgate/internal/gate/store"
	"github.com/credgate/credgate/internal/gate/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway sqlite store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "gate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newServices wires the full service set over one store.
func newServices(st store.Store) (*AppService, *AuthorityService, *InviteService, *TransferService, *QueryService) {
	return &AppService{Store: st, MintCreatorToken: true},
		&AuthorityService{Store: st},
		&InviteService{Store: st},
		&TransferService{Store: st},
		&QueryService{Store: st}
}

// mustCreateApp is a shorthand for tests that need an app to exist.
func mustCreateApp(t *testing.T, apps *AppService, owner, appID string, initialInvites, perNewUser int) {
	t.Helper()
	_, err := apps.CreateApp(context.Background(), owner, appID, initialInvites, perNewUser)
	require.NoError(t, err)
}
