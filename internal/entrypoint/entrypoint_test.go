package entrypoint

import (
	"net"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/transcripts/internal/config"
)

func TestServe_ReturnsListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := &config.Config{
		HTTP: config.HTTP{
			Host: "127.0.0.1",
			Port: int32(taken.Addr().(*net.TCPAddr).Port),
		},
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
	}

	err = Serve(gin.New(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "listen")
}
