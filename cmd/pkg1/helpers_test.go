package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testEnv returns an Environment backed by buffers and a fixed variable map.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			list := make([]string, 0, len(vars))
			for k, v := range vars {
				list = append(list, k+"="+v)
			}
			return list
		},
	}
	return env, stdout, stderr
}

// installPrefix creates a prefix directory, with data/data1.dat when content is non-nil.
func installPrefix(t *testing.T, content []byte) string {
	t.Helper()

	dir := t.TempDir()
	if content == nil {
		return dir
	}
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "data1.dat"), content, 0644); err != nil {
		t.Fatalf("failed to write system data: %v", err)
	}
	return dir
}

// assetDir creates a resource override directory holding conf.json.
func assetDir(t *testing.T, conf string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "conf.json"), []byte(conf), 0644); err != nil {
		t.Fatalf("failed to write conf.json: %v", err)
	}
	return dir
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
