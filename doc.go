// Package pkgdata loads the resources a packaged program ships with and
// prints them.
//
// # Quick Start
//
// Load everything once at startup, then print:
//
//	res, err := pkgdata.Load()
//	if err != nil {
//	    log.Fatal(err) // bundled resource missing or malformed
//	}
//	if err := res.Hello(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resource Tiers
//
// Load reads three resources, in order:
//
//  1. conf.json, bundled with the binary, parsed as a key/value object.
//     Its "greeting" string is the first line Hello prints.
//  2. data/pkg1.dat, bundled with the binary, read verbatim.
//  3. data/data1.dat under the installation prefix, read verbatim as text.
//
// The first two are mandatory. A missing or malformed bundled resource makes
// Load return an error and nothing else happens.
//
// The third is optional. When it cannot be read, Load logs a warning with
// the cause to os.Stderr (or the logger given to WithLogger) and
// substitutes SystemDataFallback:
//
//	System data: (In editable mode?) Unable to load data file: data/data1.dat
//
// # Installation Prefix
//
// By default the prefix is derived from the running executable: its
// directory, or the parent of that directory when it is named "bin". So a
// binary installed as /usr/local/bin/pkg1 reads /usr/local/data/data1.dat.
// Use WithPrefix to set it explicitly.
//
// # Custom Resources
//
// Override bundled resources from a directory, falling back to the
// embedded copy for anything missing:
//
//	res, err := pkgdata.Load(pkgdata.WithAssetPath("./resources"))
//
// Directory structure:
//
//	resources/
//	├── conf.json
//	└── data/
//	    └── pkg1.dat
//
// Or supply any ResourceLoader with WithResourceLoader.
package pkgdata
