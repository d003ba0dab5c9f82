// Package catalog lists the AWS services whose client documentation clidoc
// can open.
//
// The catalog is a fixed, ordered table compiled into the binary. Each
// [Service] has a display name, shown in the interactive picker, and a
// canonical short name, used both to recognise the service's client crate
// ("aws-sdk-<name>") in a dependency graph and to build its docs.rs URL.
//
//	for _, s := range catalog.All() {
//	    fmt.Println(s, s.Name())
//	}
package catalog

import (
	"fmt"
	"strings"
)

// Service identifies one AWS service client in the catalog.
type Service int

type entry struct {
	service Service
	display string
	name    string
}

// All returns every service in catalog order. The returned slice is a copy.
func All() []Service {
	out := make([]Service, len(table))
	for i, e := range table {
		out[i] = e.service
	}
	return out
}

// Name returns the canonical short name of s, e.g. "s3" or "sfn".
// Name panics if s is not a catalog member; see [Service.Valid].
func (s Service) Name() string { return table[s].name }

// String returns the display name of s. Values outside the catalog render as
// "Service(n)".
func (s Service) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Service(%d)", int(s))
	}
	return table[s].display
}

// Valid reports whether s is a catalog member.
func (s Service) Valid() bool { return s >= 0 && int(s) < len(table) }

// Crate returns the name of the service's client crate, e.g. "aws-sdk-s3".
func (s Service) Crate() string { return "aws-sdk-" + s.Name() }

// Lookup finds a service by canonical name or display name, ignoring case
// and surrounding whitespace.
func Lookup(s string) (Service, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, e := range table {
		if strings.EqualFold(e.name, s) || strings.EqualFold(e.display, s) {
			return e.service, true
		}
	}
	return 0, false
}

// Validate checks the integrity of the catalog table. Every entry must sit at
// the index of its Service, canonical names must be lowercase and URL-safe,
// and both canonical and display names must be pairwise distinct.
func Validate() error {
	if len(table) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	names := make(map[string]int, len(table))
	displays := make(map[string]int, len(table))
	for i, e := range table {
		if int(e.service) != i {
			return fmt.Errorf("catalog entry %d (%s) holds Service(%d)", i, e.display, int(e.service))
		}
		if e.display == "" {
			return fmt.Errorf("catalog entry %d has no display name", i)
		}
		if !validName(e.name) {
			return fmt.Errorf("catalog entry %d (%s) has invalid canonical name %q", i, e.display, e.name)
		}
		if j, ok := names[e.name]; ok {
			return fmt.Errorf("canonical name %q shared by %s and %s", e.name, table[j].display, e.display)
		}
		names[e.name] = i
		if j, ok := displays[e.display]; ok {
			return fmt.Errorf("display name %q used by entries %d and %d", e.display, j, i)
		}
		displays[e.display] = i
	}
	return nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
