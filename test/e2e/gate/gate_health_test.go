package gate_test

import (
	"testing"

	"github.com/credgate/credgate/pkg/gatesdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL := setupServer(t)
	ctx := t.Context()

	client := gatesdk.NewSDKClient(baseURL, "")

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.NotEmpty(t, live.Uptime)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
