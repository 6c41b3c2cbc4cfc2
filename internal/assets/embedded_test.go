package assets

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"testing/fstest"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_ReadResource(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		resource string
		wantErr  error
	}{
		{
			name:     "reads bundled config",
			resource: ConfigName,
		},
		{
			name:     "reads bundled package data",
			resource: PackageDataName,
		},
		{
			name:     "returns ErrResourceNotFound for nonexistent",
			resource: "data/missing.dat",
			wantErr:  ErrResourceNotFound,
		},
		{
			name:     "returns ErrInvalidResourceName for empty name",
			resource: "",
			wantErr:  ErrInvalidResourceName,
		},
		{
			name:     "returns ErrInvalidResourceName for traversal",
			resource: "../loader.go",
			wantErr:  ErrInvalidResourceName,
		},
		{
			name:     "returns ErrResourceRead for directory",
			resource: "data",
			wantErr:  ErrResourceRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.ReadResource(tt.resource)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadResource(%q) error = %v, want %v", tt.resource, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadResource(%q) unexpected error: %v", tt.resource, err)
			}
			if len(got) == 0 {
				t.Errorf("ReadResource(%q) returned empty content", tt.resource)
			}
		})
	}
}

func TestEmbeddedLoader_BundledContent(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("config holds a greeting string", func(t *testing.T) {
		t.Parallel()

		data, err := loader.ReadResource(ConfigName)
		if err != nil {
			t.Fatalf("ReadResource() error = %v", err)
		}
		var conf map[string]any
		if err := json.Unmarshal(data, &conf); err != nil {
			t.Fatalf("bundled %s is not valid JSON: %v", ConfigName, err)
		}
		if _, ok := conf["greeting"].(string); !ok {
			t.Errorf("bundled %s greeting = %v, want a string", ConfigName, conf["greeting"])
		}
	})

	t.Run("package data is PKGDATA", func(t *testing.T) {
		t.Parallel()

		data, err := loader.ReadResource(PackageDataName)
		if err != nil {
			t.Fatalf("ReadResource() error = %v", err)
		}
		if string(data) != "PKGDATA" {
			t.Errorf("ReadResource(%q) = %q, want %q", PackageDataName, data, "PKGDATA")
		}
	})
}

func TestEmbeddedLoader_List(t *testing.T) {
	t.Parallel()

	t.Run("bundled resources", func(t *testing.T) {
		t.Parallel()

		names, err := NewEmbeddedLoader().List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for _, want := range []string{ConfigName, PackageDataName} {
			if !slices.Contains(names, want) {
				t.Errorf("List() = %v, missing %q", names, want)
			}
		}
	})

	t.Run("custom filesystem in lexical order", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"z.txt":       {Data: []byte("z")},
			"a/b.txt":     {Data: []byte("b")},
			"a/a.txt":     {Data: []byte("a")},
			"empty/.keep": {Data: nil},
		}

		names, err := NewFSLoader(fsys).List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		want := []string{"a/a.txt", "a/b.txt", "empty/.keep", "z.txt"}
		if !slices.Equal(names, want) {
			t.Errorf("List() = %v, want %v", names, want)
		}
	})
}

func TestNewFSLoader_ReadResource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"conf.json": {Data: []byte(`{"greeting": "Hi"}`)},
	}
	loader := NewFSLoader(fsys)

	got, err := loader.ReadResource(ConfigName)
	if err != nil {
		t.Fatalf("ReadResource() error = %v", err)
	}
	if string(got) != `{"greeting": "Hi"}` {
		t.Errorf("ReadResource() = %q", got)
	}

	_, err = loader.ReadResource(PackageDataName)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("ReadResource(%q) error = %v, want ErrResourceNotFound", PackageDataName, err)
	}
}

func TestEmbeddedLoader_ImplementsResourceLoader(t *testing.T) {
	t.Parallel()

	var _ ResourceLoader = (*EmbeddedLoader)(nil)
}
