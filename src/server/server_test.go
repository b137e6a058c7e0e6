package server

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sofmeright/badgen/src/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s, err := New(config.Serve{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (status int, contentType, body string) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(data)
}

func TestServer_StatusBadge(t *testing.T) {
	ts := newTestServer(t)

	status, contentType, body := get(t, ts, "/badge/passing")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if contentType != "image/svg+xml; charset=utf-8" {
		t.Fatalf("content type = %q", contentType)
	}
	if !strings.HasPrefix(body, "<svg") || !strings.HasSuffix(body, "</svg>") {
		t.Fatalf("body is not an SVG document: %.60q", body)
	}
	// "passing" resolves to green.
	if !strings.Contains(body, `fill="#3C1"`) {
		t.Fatalf("body missing green fill: %.200q", body)
	}
	if strings.Contains(body, `id="l"`) {
		t.Fatalf("status-only badge has a label path")
	}
}

func TestServer_LabelBadge(t *testing.T) {
	ts := newTestServer(t)

	status, _, body := get(t, ts, "/badge/build/passing")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, `id="l"`) || !strings.Contains(body, `href="#l"`) {
		t.Fatalf("labeled badge missing label path: %.200q", body)
	}
}

func TestServer_StyleAndColor(t *testing.T) {
	ts := newTestServer(t)

	_, _, body := get(t, ts, "/badge/passing?style=flat")
	if strings.Contains(body, "linearGradient") {
		t.Fatalf("flat badge has a gradient")
	}

	_, _, body = get(t, ts, "/badge/passing?color=red")
	if !strings.Contains(body, `fill="#E43"`) {
		t.Fatalf("color override ignored: %.200q", body)
	}

	_, _, body = get(t, ts, "/badge/build/passing?label-color=555")
	if !strings.Contains(body, `fill="#555"`) {
		t.Fatalf("label color ignored: %.200q", body)
	}
}

func TestServer_BadQuery(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		path string
		want string
	}{
		{"/badge/passing?style=nope", "unrecognized style"},
		{"/badge/passing?color=nope", "unrecognized color"},
		{"/badge/passing?precision=9", "precision"},
		{"/badge/passing?precision=x", "precision"},
	}
	for _, c := range cases {
		status, _, body := get(t, ts, c.path)
		if status != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", c.path, status)
		}
		if !strings.Contains(body, c.want) {
			t.Fatalf("%s: body = %q, want %q", c.path, body, c.want)
		}
	}
}

func TestServer_Precision(t *testing.T) {
	ts := newTestServer(t)

	status, _, body := get(t, ts, "/badge/passing?precision=2")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.HasPrefix(body, "<svg") {
		t.Fatalf("body is not an SVG document: %.60q", body)
	}
}

func TestServer_Approx(t *testing.T) {
	ts := newTestServer(t)

	status, _, body := get(t, ts, "/badge/build/passing?approx=1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<text") {
		t.Fatalf("approximate badge has no text elements: %.200q", body)
	}
}

func TestServer_InvalidCharacter(t *testing.T) {
	ts := newTestServer(t)

	status, _, _ := get(t, ts, "/badge/a%26b")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	status, _, body := get(t, ts, "/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Fatalf("healthz = %d %q", status, body)
	}
}

func TestServer_NotFound(t *testing.T) {
	ts := newTestServer(t)

	status, _, _ := get(t, ts, "/badge/a/b/c")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestServer_ConcurrentRequests(t *testing.T) {
	ts := newTestServer(t)

	const n = 16
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := http.Get(fmt.Sprintf("%s/badge/run-%d/passing", ts.URL, i))
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()
			if _, err := io.ReadAll(resp.Body); err != nil {
				errs <- err
				return
			}
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("request %d: status %d", i, resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("%v", err)
	}
}
