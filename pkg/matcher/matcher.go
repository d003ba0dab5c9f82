// Package matcher recognises an AWS client crate in a dependency graph and
// extracts its version.
//
// Cargo package IDs encode a crate's name and exact version together, usually
// behind a source qualifier:
//
//	registry+https://github.com/rust-lang/crates.io-index#aws-sdk-s3@1.68.0
//
// A [Pattern] built for a canonical service name matches any identifier that
// ends in "aws-sdk-<name>@MAJOR.MINOR.PATCH", whatever precedes it.
package matcher

import (
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// CratePrefix is the name prefix shared by all AWS SDK client crates.
const CratePrefix = "aws-sdk-"

// Pattern matches package identifiers of one service's client crate.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

// Compile builds the pattern for the canonical service name. The name is
// matched literally and must be followed directly by "@", so the pattern
// for "s3" does not match "aws-sdk-s3tables@1.0.0".
func Compile(name string) *Pattern {
	expr := regexp.QuoteMeta(CratePrefix+name) +
		`@(?P<major>[0-9]+)\.(?P<minor>[0-9]+)\.(?P<patch>[0-9]+)$`
	return &Pattern{name: name, re: regexp.MustCompile(expr)}
}

// Name returns the canonical service name the pattern was compiled for.
func (p *Pattern) Name() string { return p.name }

// String returns the regular expression source.
func (p *Pattern) String() string { return p.re.String() }

// Match reports whether id belongs to the pattern's crate and returns the
// version it encodes. Leading zeros are accepted and dropped ("07" is 7).
// An identifier that does not match, or whose components overflow uint64,
// yields (nil, false).
func (p *Pattern) Match(id string) (*semver.Version, bool) {
	m := p.re.FindStringSubmatch(id)
	if m == nil {
		return nil, false
	}

	var parts [3]uint64
	for i, group := range []string{"major", "minor", "patch"} {
		n, err := strconv.ParseUint(m[p.re.SubexpIndex(group)], 10, 64)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}
	return semver.New(parts[0], parts[1], parts[2], "", ""), true
}
