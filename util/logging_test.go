package util

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLogF(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer func() { LoggingEnabled = false }()

	LoggingEnabled = false
	LogF("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Expected nothing to be logged, got %q", buf.String())
	}

	LogErrorF("always %s", "shown")
	if !strings.Contains(buf.String(), "error: always shown") {
		t.Errorf("Expected error message, got %q", buf.String())
	}

	LoggingEnabled = true
	LogF("visible %d", 2)
	if !strings.Contains(buf.String(), "visible 2") {
		t.Errorf("Expected debug message, got %q", buf.String())
	}
}

func TestLogSink(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
	}))
	defer server.Close()

	SetOutput(io.Discard)
	defer SetOutput(os.Stderr)
	LogSink = server.URL
	defer func() { LogSink = "" }()

	LogErrorF("posted")
	select {
	case msg := <-received:
		if msg != "error: posted" {
			t.Errorf("Unexpected message %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Message never reached the sink")
	}
}
