//go:build integration

package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/embassy-tools/embassy-cli/internal/upstream"
)

const (
	testCommit  = "9f1a3c0e7b2d4f6a8c1e3b5d7f9a2c4e6b8d0f1a"
	testChannel = "nightly-2023-10-02"
)

// crateVersions are the component versions served by the fake upstream.
var crateVersions = map[string]string{
	"embassy-stm32":    "0.1.0",
	"embassy-nrf":      "0.1.0",
	"embassy-rp":       "0.1.0",
	"embassy-executor": "0.3.0",
	"embassy-time":     "0.1.5",
	"embassy-sync":     "0.3.0",
	"embassy-futures":  "0.1.0",
}

// fakeUpstream serves the GitHub API under /api and raw files under /raw and
// records every request path.
type fakeUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()

	routes := map[string]string{
		"/api/repos/embassy-rs/embassy/commits":            `[{"sha":"` + testCommit + `"}]`,
		"/raw/embassy-rs/embassy/main/rust-toolchain.toml": "[toolchain]\nchannel = \"" + testChannel + "\"\n",
	}
	for name, version := range crateVersions {
		routes["/raw/embassy-rs/embassy/main/"+name+"/Cargo.toml"] =
			"[package]\nname = \"" + name + "\"\nversion = \"" + version + "\"\nedition = \"2021\"\n"
	}

	f := &fakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Path)
		f.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) client() *upstream.Client {
	return upstream.New(
		upstream.WithHTTPClient(f.Server.Client()),
		upstream.WithAPIBase(f.URL+"/api"),
		upstream.WithRawBase(f.URL+"/raw"),
	)
}

// count returns how many requests hit paths containing substr.
func (f *fakeUpstream) count(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.requests {
		if strings.Contains(p, substr) {
			n++
		}
	}
	return n
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q.\nContents:\n%s", path, substr, string(data))
	}
}

func projectPath(root string, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
