package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.NotNil(t, wrapped)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.headerWritten)
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "created", statusCode: http.StatusCreated},
		{name: "not found", statusCode: http.StatusNotFound},
		{name: "server error", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, wrapped.StatusCode())
			assert.True(t, wrapped.headerWritten)
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_MultipleCallsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())

	// The second call must not overwrite the recorded code.
	wrapped.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty write", data: []byte{}},
		{name: "small write", data: []byte(`{"id":1}`)},
		{name: "article payload", data: []byte(`{"id":1,"title":"Full Moon Feud","astroAnalysis":"..."}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			n, err := wrapped.Write(tt.data)

			require.NoError(t, err)
			assert.Equal(t, len(tt.data), n)
			assert.Equal(t, len(tt.data), wrapped.BytesWritten())
			assert.Equal(t, string(tt.data), rec.Body.String())
		})
	}
}

func TestResponseWriter_Write_ImplicitStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	_, err := wrapped.Write([]byte("test"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.True(t, wrapped.headerWritten)
}

func TestResponseWriter_Write_Accumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n1, err1 := wrapped.Write([]byte("hello "))
	n2, err2 := wrapped.Write([]byte("world"))

	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, 11, n1+n2)
	assert.Equal(t, 11, wrapped.BytesWritten())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, rec, wrapped.Unwrap())
}

func TestResponseWriter_MiddlewarePattern(t *testing.T) {
	// The request logger's usage: wrap, run the handler, then read the
	// recorded status and size.
	var gotStatus, gotBytes int
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := Wrap(w)
			next.ServeHTTP(wrapped, r)
			gotStatus = wrapped.StatusCode()
			gotBytes = wrapped.BytesWritten()
		})
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	})

	req := httptest.NewRequest(http.MethodGet, "/articles/999", nil)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", rec.Body.String())
	assert.Equal(t, http.StatusNotFound, gotStatus)
	assert.Equal(t, len("not found"), gotBytes)
}
