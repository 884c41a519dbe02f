package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

func brotliTestRouter(chunks ...[]byte) *gin.Engine {
	r := gin.New()
	r.Use(Brotli())
	r.GET("/payload", func(c *gin.Context) {
		c.Status(http.StatusOK)
		for _, chunk := range chunks {
			c.Writer.Write(chunk)
		}
	})
	return r
}

func requestBrotli(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/payload", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func repeated(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

// A body written in several chunks must stay one coherent brotli stream,
// including chunks that land after compression has started.
func TestBrotliMultiChunkBodyDecodes(t *testing.T) {
	first := repeated('a', 2048)
	second := repeated('b', 512)
	w := requestBrotli(t, brotliTestRouter(first, second))

	if got := w.Header().Get("Content-Encoding"); got != "br" {
		t.Fatalf("Content-Encoding = %q, want br", got)
	}

	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	if err != nil {
		t.Fatalf("body does not decode as brotli: %v", err)
	}
	want := append(append([]byte{}, first...), second...)
	if !bytes.Equal(decoded, want) {
		t.Fatalf("decoded %d bytes, want %d matching bytes", len(decoded), len(want))
	}
}

func TestBrotliSmallBodyStaysPlain(t *testing.T) {
	body := repeated('x', 100)
	w := requestBrotli(t, brotliTestRouter(body))

	if got := w.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, want empty", got)
	}
	if !bytes.Equal(w.Body.Bytes(), body) {
		t.Fatalf("small body altered: got %d bytes, want %d", w.Body.Len(), len(body))
	}
}

func TestBrotliSkippedWithoutAcceptEncoding(t *testing.T) {
	body := repeated('y', 4096)
	r := brotliTestRouter(body)

	req := httptest.NewRequest(http.MethodGet, "/payload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, want empty", got)
	}
	if !bytes.Equal(w.Body.Bytes(), body) {
		t.Fatal("uncompressed body altered")
	}
}
