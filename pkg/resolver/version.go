package resolver

import "github.com/Masterminds/semver/v3"

// Latest is the fallback version string used when no installed crate
// matches.
const Latest = "latest"

// Version is the outcome of a resolution: either an exact MAJOR.MINOR.PATCH
// triple or the [Latest] sentinel. The zero value is Latest.
type Version struct {
	v *semver.Version
}

// Exact returns a Version for an installed crate version. A nil v yields
// Latest. Pre-release and build metadata are dropped.
func Exact(v *semver.Version) Version {
	if v == nil {
		return Version{}
	}
	return Version{v: semver.New(v.Major(), v.Minor(), v.Patch(), "", "")}
}

// IsLatest reports whether v is the fallback sentinel.
func (v Version) IsLatest() bool { return v.v == nil }

// Semver returns the exact version, or nil for Latest.
func (v Version) Semver() *semver.Version { return v.v }

// String returns "latest" or the decimal "MAJOR.MINOR.PATCH" triple, with no
// "v" prefix and no suffix.
func (v Version) String() string {
	if v.v == nil {
		return Latest
	}
	return v.v.String()
}
