package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/app"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

type closer struct{ closed atomic.Bool }

func (c *closer) Close() error {
	c.closed.Store(true)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestApplication_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, testConfig())

	var started atomic.Int32
	a.SetStarters(
		starterFunc(func(context.Context) error { started.Add(1); return nil }),
		starterFunc(func(context.Context) error { started.Add(1); return nil }),
	)
	a.SetHTTPHandlers(pingHandler{})
	c := &closer{}
	a.SetClosers(c)

	require.NoError(t, a.Start(context.Background()))
	assert.Equal(t, int32(2), started.Load())

	require.NoError(t, a.Stop())
	assert.True(t, c.closed.Load())
}

func TestApplication_StarterFails(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, testConfig())

	startErr := errors.New("warm up failed")
	a.SetStarters(starterFunc(func(context.Context) error { return startErr }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, startErr)
}
