// pkg/reload/reload_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: sh
// PURPOSE: Test running the reload command through the shell

package reload

import (
	"context"
	"testing"

	"github.com/arthur-debert/themer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	res, err := Run(context.Background(), "echo reloaded && echo done >&2")

	require.NoError(t, err)
	assert.Equal(t, "echo reloaded && echo done >&2", res.Command)
	assert.Contains(t, res.Output, "reloaded")
	assert.Contains(t, res.Output, "done")
}

func TestRun_Failure(t *testing.T) {
	_, err := Run(context.Background(), "echo broken; exit 3")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReloadFailed))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, 3, details["exitCode"])
	assert.Equal(t, "broken", details["output"])
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, "sleep 5")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReloadFailed))
}
