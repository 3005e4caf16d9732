// Package version provides version information and display utilities
// for the GHier tools.
package version

import (
	"fmt"
	"os"
)

const (
	// Name of GHier.
	Name string = "GHier"
	// Version of GHier.
	Version string = "1.0.0-develop"
	// Additional information for GHier
	Additional string = "Happy geocoding!"
)

// String returns a plain text representation of the GHier version
// information including application name, version number and
// additional information.
func String() string {
	return fmt.Sprintf("%s %v %s", Name, Version, Additional)
}

// Print the version.
func Print() {
	fmt.Println(String())
}

// PrintAndExit prints the program version and exists.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
