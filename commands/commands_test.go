package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sjsage522/zenlesscollector/config"
	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/services/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wikiPage = `<html><body>
<table class="wikitable"><tbody>
	<tr><th>Code</th><th>Rewards</th><th>Expiry</th></tr>
	<tr><td>SMALLCODE1</td><td>60 Polychrome</td><td>No expiry</td></tr>
	<tr><td>LARGECODE1</td><td>300 Polychrome</td><td>-</td></tr>
	<tr><td>GONECODE01</td><td>500 Polychrome</td><td>expired</td></tr>
</tbody></table>
</body></html>`

func testConfig(t *testing.T, sourceURL string) *config.Config {
	t.Helper()
	return &config.Config{
		SourceURL:     sourceURL,
		UserAgent:     "Mozilla/5.0",
		FetchTimeout:  5 * time.Second,
		TableSelector: collector.DefaultTableSelector,
		CurrencyName:  collector.DefaultCurrency,
		StoreBackend:  config.StoreFile,
		CacheFile:     filepath.Join(t.TempDir(), "cached_codes.json"),
		CacheKey:      "zenless:codes",
		ListenAddr:    "127.0.0.1:0",
		WatchInterval: time.Minute,
	}
}

func TestNewStoreByBackend(t *testing.T) {
	cfg := testConfig(t, "http://example.com")
	cfg.MemcacheAddr = "localhost:11211"
	cfg.RedisAddr = "localhost:6379"

	tests := []struct {
		backend string
		want    string
	}{
		{config.StoreFile, "file"},
		{config.StoreMemcache, config.StoreMemcache},
		{config.StoreRedis, config.StoreRedis},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg.StoreBackend = tt.backend
			services := &Services{Config: cfg}
			store, err := newStore(cfg, services)
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Name())
			services.Cleanup()
		})
	}

	cfg.StoreBackend = "etcd"
	_, err := newStore(cfg, &Services{Config: cfg})
	assert.Error(t, err)
}

func TestInitializeServicesEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(wikiPage))
	}))
	defer srv.Close()

	services, err := initializeServices(testConfig(t, srv.URL))
	require.NoError(t, err)
	defer services.Cleanup()

	assert.Nil(t, services.Publisher)
	assert.Nil(t, services.Notifier)

	first := services.Worker.RunOnce(context.Background())
	require.False(t, first.FetchFailed)
	assert.Equal(t, []collector.RedemptionCode{
		{Code: "LARGECODE1", Reward: 300},
		{Code: "SMALLCODE1", Reward: 60},
	}, first.Codes)
	assert.Equal(t, []string{"LARGECODE1", "SMALLCODE1"}, first.NewCodes)
	assert.NoError(t, first.SaveErr)

	second := services.Worker.RunOnce(context.Background())
	assert.Len(t, second.Codes, 2)
	assert.Empty(t, second.NewCodes)
}

func TestRenderResult(t *testing.T) {
	result := &worker.Result{
		Codes: []collector.RedemptionCode{
			{Code: "LARGECODE1", Reward: 300},
			{Code: "SMALLCODE1", Reward: 60},
		},
		NewCodes: []string{"SMALLCODE1"},
	}

	var buf bytes.Buffer
	renderResult(&buf, result, "asc", "")
	out := buf.String()

	assert.Contains(t, out, "Found 2 Active Codes!")
	assert.Less(t, strings.Index(out, "SMALLCODE1"), strings.Index(out, "LARGECODE1"))
	assert.Contains(t, out, "New Codes Detected!")
	assert.Contains(t, out, "SMALLCODE1 - 60 Polychrome")
	assert.NotContains(t, out, "LARGECODE1 - 300")
	assert.NotContains(t, out, "Warning")
}

func TestRenderResultEmptyAndSaveError(t *testing.T) {
	result := &worker.Result{
		Codes:    []collector.RedemptionCode{},
		NewCodes: []string{},
		SaveErr:  errors.New("disk full"),
	}

	var buf bytes.Buffer
	renderResult(&buf, result, "desc", "Polychrome")
	out := buf.String()

	assert.Contains(t, out, "No Active Codes Found :(")
	assert.NotContains(t, out, "New Codes Detected")
	assert.Contains(t, out, "could not save the code snapshot: disk full")
}

func TestListenAndServeShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NotFoundHandler(),
	}

	done := make(chan error, 1)
	go func() {
		done <- listenAndServe(ctx, srv)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
