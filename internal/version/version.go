package version

const (
	Major = "0"
	Minor = "4"
	Patch = "1"

	Package = "vtgate-go-sdk"
)

const (
	Version     = Major + "." + Minor + "." + Patch
	FullVersion = Package + "/" + Version
)
