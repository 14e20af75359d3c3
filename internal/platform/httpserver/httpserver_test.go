package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightsurety/internal/platform/config"
)

func TestNew(t *testing.T) {
	h := http.NewServeMux()

	t.Run("applies configured timeouts", func(t *testing.T) {
		srv := New(config.Server{
			Addr:         ":9000",
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
			IdleTimeout:  4 * time.Second,
		}, h)
		assert.Equal(t, ":9000", srv.Addr)
		assert.Equal(t, 2*time.Second, srv.ReadTimeout)
		assert.Equal(t, 3*time.Second, srv.WriteTimeout)
		assert.Equal(t, 4*time.Second, srv.IdleTimeout)
		assert.Equal(t, defaultReadHeaderTimeout, srv.ReadHeaderTimeout)
	})

	t.Run("defaults idle timeout", func(t *testing.T) {
		srv := New(config.Server{Addr: ":9000"}, h)
		assert.Equal(t, defaultIdleTimeout, srv.IdleTimeout)
		assert.Zero(t, srv.WriteTimeout)
	})
}
