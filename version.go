package trackppt

import "fmt"

// Version information written into docProps/app.xml.
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 1
)

// Version is the full version string.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

// appName identifies the generator in document properties.
const appName = "trackppt"
