package assets

// Names of the bundled resources.
const (
	ConfigName      = "conf.json"
	PackageDataName = "data/pkg1.dat"
)

// ResourceLoader defines the contract for reading bundled resources.
// Implementations may load from embedded files, a directory on disk, etc.
type ResourceLoader interface {
	// ReadResource returns the raw bytes of the named resource.
	// Returns ErrResourceNotFound if the resource doesn't exist.
	// Returns ErrInvalidResourceName if the name is not a clean relative path.
	ReadResource(name string) ([]byte, error)
}
