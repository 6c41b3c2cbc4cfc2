package pkgdata

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/alnah/go-pkgdata/internal/assets"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// memLoader returns a loader serving the given resources from memory.
// An empty value omits the resource.
func memLoader(conf, pkgData string) ResourceLoader {
	fsys := fstest.MapFS{}
	if conf != "" {
		fsys[ConfigResource] = &fstest.MapFile{Data: []byte(conf)}
	}
	if pkgData != "" {
		fsys[PackageDataResource] = &fstest.MapFile{Data: []byte(pkgData)}
	}
	return assets.NewFSLoader(fsys)
}

// prefixWithSystemData creates a prefix directory holding data/data1.dat.
func prefixWithSystemData(t *testing.T, content []byte) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "data1.dat"), content, 0644); err != nil {
		t.Fatalf("failed to write system data: %v", err)
	}
	return dir
}

// captureLogger returns a text logger writing into buf.
func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func helloLines(t *testing.T, res *Resources) []string {
	t.Helper()

	var out bytes.Buffer
	if err := res.Hello(&out); err != nil {
		t.Fatalf("Hello() error = %v", err)
	}
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// ---------------------------------------------------------------------------
// TestLoad_BundledResources - Mandatory, fail-fast loads
// ---------------------------------------------------------------------------

func TestLoad_BundledResources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		conf    string
		pkgData string
		wantErr error
	}{
		{"missing config", "", "PKGDATA", ErrResourceNotFound},
		{"malformed config", `{"greeting": [`, "PKGDATA", ErrConfigParse},
		{"config not an object", `["hello"]`, "PKGDATA", ErrConfigParse},
		{"missing package data", `{"greeting": "hello"}`, "", ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Load(
				WithResourceLoader(memLoader(tt.conf, tt.pkgData)),
				WithPrefix(t.TempDir()),
			)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Errorf("Load() returned resources alongside error")
			}
		})
	}
}

func TestLoad_ErrorNamesResource(t *testing.T) {
	t.Parallel()

	_, err := Load(WithResourceLoader(memLoader(`{"greeting": "hello"}`, "")), WithPrefix(t.TempDir()))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), PackageDataResource) {
		t.Errorf("Load() error = %q, want it to name %s", err, PackageDataResource)
	}
}

func TestLoad_GreetingIsFirstLine(t *testing.T) {
	t.Parallel()

	res, err := Load(
		WithResourceLoader(memLoader(`{"greeting": "Hi"}`, "PKGDATA")),
		WithPrefix(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	lines := helloLines(t, res)
	if lines[0] != "Hi" {
		t.Errorf("first line = %q, want %q", lines[0], "Hi")
	}
}

func TestLoad_AssetPath(t *testing.T) {
	t.Parallel()

	t.Run("directory overrides config and keeps embedded package data", func(t *testing.T) {
		t.Parallel()

		assetDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(assetDir, ConfigResource), []byte(`{"greeting": "from disk"}`), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		res, err := Load(WithAssetPath(assetDir), WithPrefix(t.TempDir()))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		lines := helloLines(t, res)
		if lines[0] != "from disk" || lines[1] != "PKGDATA" {
			t.Errorf("Hello() lines = %q, want greeting from disk and embedded package data", lines)
		}
	})

	t.Run("invalid directory returns ErrInvalidAssetPath", func(t *testing.T) {
		t.Parallel()

		_, err := Load(WithAssetPath("/nonexistent/path/abc123xyz"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("Load() error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("malformed config on disk is not masked by embedded", func(t *testing.T) {
		t.Parallel()

		assetDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(assetDir, ConfigResource), []byte(`not: [json`), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := Load(WithAssetPath(assetDir), WithPrefix(t.TempDir()))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Load() error = %v, want ErrConfigParse", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHello - Output formatting
// ---------------------------------------------------------------------------

func TestHello_MissingGreeting(t *testing.T) {
	t.Parallel()

	res, err := Load(
		WithResourceLoader(memLoader(`{"salutation": "hello"}`, "PKGDATA")),
		WithPrefix(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var out bytes.Buffer
	err = res.Hello(&out)
	if !errors.Is(err, ErrMissingGreeting) {
		t.Fatalf("Hello() error = %v, want ErrMissingGreeting", err)
	}
	if out.Len() != 0 {
		t.Errorf("Hello() wrote %q before failing, want nothing", out.String())
	}
}

func TestHello_Idempotent(t *testing.T) {
	t.Parallel()

	res, err := Load(WithPrefix(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var first, second bytes.Buffer
	if err := res.Hello(&first); err != nil {
		t.Fatalf("first Hello() error = %v", err)
	}
	if err := res.Hello(&second); err != nil {
		t.Fatalf("second Hello() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("Hello() output changed between calls:\n%q\n%q", first.String(), second.String())
	}
}

func TestHello_TrailingNewlines(t *testing.T) {
	t.Parallel()

	prefix := prefixWithSystemData(t, []byte("sys line\n"))
	res, err := Load(
		WithResourceLoader(memLoader(`{"greeting": "hello"}`, "pkg line\n")),
		WithPrefix(prefix),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var out bytes.Buffer
	if err := res.Hello(&out); err != nil {
		t.Fatalf("Hello() error = %v", err)
	}
	if want := "hello\npkg line\nsys line\n"; out.String() != want {
		t.Errorf("Hello() = %q, want %q", out.String(), want)
	}
}

func TestHello_WriteError(t *testing.T) {
	t.Parallel()

	res, err := Load(WithPrefix(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	err = res.Hello(failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Hello() error = %v, want write failure", err)
	}
}

func TestResources_PackageDataIsCopy(t *testing.T) {
	t.Parallel()

	res, err := Load(WithPrefix(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data := res.PackageData()
	data[0] = 'X'

	if got := string(res.PackageData()); got != "PKGDATA" {
		t.Errorf("PackageData() = %q after caller mutation, want %q", got, "PKGDATA")
	}
}

func TestResources_ConfigKeys(t *testing.T) {
	t.Parallel()

	res, err := Load(
		WithResourceLoader(memLoader(`{"name": "pkg1", "greeting": "hello"}`, "PKGDATA")),
		WithPrefix(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	keys := res.ConfigKeys()
	if len(keys) != 2 || keys[0] != "greeting" || keys[1] != "name" {
		t.Errorf("ConfigKeys() = %v, want [greeting name]", keys)
	}
}

// ---------------------------------------------------------------------------
// TestLoad_EndToEnd - Embedded resources, no system data
// ---------------------------------------------------------------------------

func TestLoad_EndToEnd(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	res, err := Load(WithPrefix(t.TempDir()), WithLogger(captureLogger(&logs)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !strings.Contains(logs.String(), "system data load error") {
		t.Errorf("expected diagnostic before output, logs = %q", logs.String())
	}

	var out bytes.Buffer
	if err := res.Hello(&out); err != nil {
		t.Fatalf("Hello() error = %v", err)
	}

	want := "hello\nPKGDATA\nSystem data: (In editable mode?) Unable to load data file: data/data1.dat\n"
	if out.String() != want {
		t.Errorf("Hello() = %q, want %q", out.String(), want)
	}
}
