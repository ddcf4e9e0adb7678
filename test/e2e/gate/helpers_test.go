package gate_test

import (
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	gatehttp "github.com/credgate/credgate/internal/gate/http"
	"github.com/credgate/credgate/internal/gate/service"
	"github.com/credgate/credgate/internal/gate/store/drivers/sqlite"
	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/credgate/credgate/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for credgate end-to-end tests. Each test gets a fresh
 * in-process server over a throwaway sqlite database, plus SDK clients
 * authenticated as arbitrary identities.
 */

const (
	testJWTSecret = "e2e-test-secret-not-for-production"
	testIssuer    = "credgate"
)

// setupServer starts an in-process credgate server wired exactly like the
// production application and returns its base URL.
func setupServer(t *testing.T) string {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "gate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier := jwtx.NewVerifier([]byte(testJWTSecret), testIssuer)
	logger := slog.New(slog.DiscardHandler)

	router := gatehttp.NewRouter(verifier, "test", st, logger)
	router.AppService = &service.AppService{Store: st, MintCreatorToken: true}
	router.AuthorityService = &service.AuthorityService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.TransferService = &service.TransferService{Store: st}
	router.QueryService = &service.QueryService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server.URL
}

// signToken mints a bearer token for the given identity.
func signToken(t *testing.T, identity string) string {
	t.Helper()

	token, err := jwtx.NewSigner([]byte(testJWTSecret), testIssuer, 0).Sign(identity)
	require.NoError(t, err)
	return token
}

// sdkFor returns an SDK client authenticated as the given identity.
func sdkFor(t *testing.T, baseURL, identity string) *gatesdk.SDKClient {
	t.Helper()
	return gatesdk.NewSDKClient(baseURL, signToken(t, identity))
}

// requireAPIError asserts that err is an *gatesdk.APIError with the given
// status code and error code.
func requireAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*gatesdk.APIError)
	require.Truef(t, ok, "expected *gatesdk.APIError, got %T: %v", err, err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
