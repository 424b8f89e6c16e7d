package recommend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine against url with sleeps recorded
// instead of slept.
func newTestEngine(url string, sleeps *[]time.Duration) *Engine {
	e := New(Options{
		ServiceURL:  url,
		APIKey:      "test-key",
		Model:       "scoring-v1",
		Timeout:     2 * time.Second,
		MaxAttempts: 2,
	})
	e.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return e
}

func TestGenerate_RemoteSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req scoringRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Input.Text, "Go developer resume text")
		assert.Equal(t, "scoring-v1", req.Model)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"outputs": []map[string]string{
				{"content": `[{"title":"Backend Engineer","company":"Acme","score":0.9,"reason":"match"}]`},
			},
		})
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := newTestEngine(srv.URL, &sleeps)

	recs := e.Generate(context.Background(), "Go developer resume text", []string{"Go"}, nil, 3)

	require.Len(t, recs, 1)
	assert.Equal(t, "Backend Engineer", recs[0].Title)
	assert.InDelta(t, 0.9, recs[0].Score, 1e-9)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Empty(t, sleeps)
}

func TestGenerate_RateLimitedRetriesThenFallsBack(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := newTestEngine(srv.URL, &sleeps)

	recs := e.Generate(context.Background(), "text", []string{"Python"}, nil, 0)

	// Both attempts consumed, linear backoff after each failure, then the
	// local fallback list.
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}, sleeps)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Junior Developer", recs[0].Title)
}

func TestGenerate_BadRequestDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := newTestEngine(srv.URL, &sleeps)

	recs := e.Generate(context.Background(), "text", []string{"Python"}, nil, 5)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Empty(t, sleeps)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Python Developer", recs[0].Title)
}

func TestGenerate_ServerErrorRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"text":"[{\"title\":\"Recovered\"}]"}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := newTestEngine(srv.URL, &sleeps)

	recs := e.Generate(context.Background(), "text", nil, nil, 0)

	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, sleeps)
	require.Len(t, recs, 1)
	assert.Equal(t, "Recovered", recs[0].Title)
}

func TestGenerate_AttemptTimeoutCancelsAndRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Never answers; returns once the client gives up on the attempt.
		// The body must be drained first: the server only watches for a
		// client disconnect (and cancels the request context) after the
		// request body has been consumed.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := New(Options{
		ServiceURL:  srv.URL,
		APIKey:      "test-key",
		Timeout:     50 * time.Millisecond,
		MaxAttempts: 2,
	})
	e.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	start := time.Now()
	recs := e.Generate(context.Background(), "text", []string{"Go"}, nil, 5)
	elapsed := time.Since(start)

	// Each attempt is cut off at its own deadline, so both attempts run
	// and the whole call stays far below one full attempt without it.
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}, sleeps)
	assert.Less(t, elapsed, 2*time.Second)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Go Developer", recs[0].Title)
}

func TestGenerate_UnparseableBodyFallsBack(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	e := newTestEngine(srv.URL, &sleeps)

	recs := e.Generate(context.Background(), "text", []string{"Sql"}, nil, 9)

	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	require.NotEmpty(t, recs)
	assert.Equal(t, "Sql Developer", recs[0].Title)
}

func TestGenerate_NoRemoteConfigUsesFallback(t *testing.T) {
	var sleeps []time.Duration

	tests := []struct {
		name string
		opts Options
	}{
		{name: "no url", opts: Options{APIKey: "k"}},
		{name: "no key", opts: Options{ServiceURL: "https://scoring.example"}},
		{name: "neither", opts: Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.opts)
			e.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

			recs := e.Generate(context.Background(), "text", []string{"React", "Python"}, nil, 0)

			require.Len(t, recs, 3)
			assert.Equal(t, "Junior Developer", recs[0].Title)
			assert.Equal(t, "React Developer", recs[1].Title)
			assert.Equal(t, "Python Engineer", recs[2].Title)
		})
	}
	assert.Empty(t, sleeps)
}

func TestGenerate_DoesNotMutateInputs(t *testing.T) {
	skills := []string{"React", "Python"}
	education := []string{"B.Sc Computer Science"}

	e := New(Options{})
	e.Generate(context.Background(), "text", skills, education, 0)

	assert.Equal(t, []string{"React", "Python"}, skills)
	assert.Equal(t, []string{"B.Sc Computer Science"}, education)
}

func TestPromptTruncation(t *testing.T) {
	long := make([]byte, maxPromptChars+500)
	for i := range long {
		long[i] = 'a'
	}

	prompt := buildPrompt(string(long))

	assert.Contains(t, prompt, strings.Repeat("a", maxPromptChars))
	assert.NotContains(t, prompt, strings.Repeat("a", maxPromptChars+1))
	assert.Contains(t, prompt, "Return ONLY the JSON array")
}

func TestNewAppliesDefaults(t *testing.T) {
	e := New(Options{})

	assert.Equal(t, DefaultTimeout, e.opts.Timeout)
	assert.Equal(t, DefaultMaxAttempts, e.opts.MaxAttempts)
	assert.NotNil(t, e.client)
	assert.NotNil(t, e.sleep)
}
