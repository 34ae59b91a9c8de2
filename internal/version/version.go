// ABOUTME: Version information for waventropy binaries
// ABOUTME: Product, manufacturer and release version constants
package version

const (
	// Version is the release version
	Version = "0.3.0"

	// Product is the product name shown by -version
	Product = "waventropy"

	// Manufacturer identifies the publisher
	Manufacturer = "waventropy contributors"
)

// String returns the human-readable version line
func String() string {
	return Product + " " + Version + " (" + Manufacturer + ")"
}
