package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// newTestHandler создаёт Handler, логгер которого пишет в buf.
func newTestHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

var testSpanContext = trace.NewSpanContext(trace.SpanContextConfig{
	TraceID:    trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
	SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
	TraceFlags: trace.FlagsSampled,
})

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		withSpan bool
		wantID   string
		wantUUID bool
	}{
		{
			name:   "header wins",
			header: "job-board-trace-1",
			wantID: "job-board-trace-1",
		},
		{
			name:     "header wins over span",
			header:   "job-board-trace-2",
			withSpan: true,
			wantID:   "job-board-trace-2",
		},
		{
			name:     "span trace id",
			withSpan: true,
			wantID:   "4bf92f3577b34da6a3ce929d0e0e4736",
		},
		{
			name:     "generated",
			wantUUID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(&logBuf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("handled")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			if tt.withSpan {
				req = req.WithContext(trace.ContextWithSpanContext(req.Context(), testSpanContext))
			}

			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusTeapot, rr.Code)
			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)

			if tt.wantUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantID, got)
			}
			assert.Contains(t, logBuf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(next)

	const n = 50
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			ids <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		seen[<-ids] = struct{}{}
	}
	assert.Len(t, seen, n)
}

// Контекст исходного запроса не меняется.
func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	originalCtx := req.Context()
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
