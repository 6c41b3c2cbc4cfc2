// Package assets provides the resources bundled with the program: the
// conf.json configuration and the data/pkg1.dat package data blob.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	ResourceLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (installed copy)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader serves the resources compiled into the binary. They are
// always present in a correct build.
//
// FilesystemLoader lets a developer point the program at a working tree
// of resources, with path traversal protection and symlink resolution.
//
// Resolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader only when the resource is not found there. Validation and
// I/O errors never fall back.
//
// # Directory Structure
//
// Resource names are slash-separated paths relative to the resource root:
//
//	{basePath}/
//	├── conf.json        # configuration, must hold a "greeting" string
//	└── data/
//	    └── pkg1.dat     # package data, read verbatim
//
// # Security
//
// Resource names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
