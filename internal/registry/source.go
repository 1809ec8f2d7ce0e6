package registry

import (
	"sort"
	"strings"
)

// Unit is one candidate source of hook definitions, identified by its
// slash-separated path relative to the scan root. How definitions are
// physically loaded is the source's concern; the registry only classifies
// what comes back.
type Unit struct {
	Path        string
	Definitions func() []any
}

// Source lists every candidate unit under its root. Filtering by scan policy
// happens in the registry, not here.
type Source interface {
	Units() ([]Unit, error)
}

// MapSource is the static-linking Source: unit paths mapped to definition
// factories, registered at build time. Units are returned sorted by path so
// scans are deterministic for a fixed mapping.
type MapSource map[string]func() []any

// Units implements Source.
func (m MapSource) Units() ([]Unit, error) {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	units := make([]Unit, 0, len(paths))
	for _, p := range paths {
		units = append(units, Unit{Path: p, Definitions: m[p]})
	}
	return units, nil
}

// ScanOptions controls which units a scan considers.
type ScanOptions struct {
	Recursive   bool
	ExcludeDirs []string
}

// DefaultScanOptions is the production policy: the whole tree under the
// root, test fixture directories excluded.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{Recursive: true, ExcludeDirs: []string{"testdata"}}
}

// FixtureScanOptions is the test-oriented policy: everything under the root,
// fixtures included.
func FixtureScanOptions() ScanOptions {
	return ScanOptions{Recursive: true}
}

func (o ScanOptions) includes(path string) bool {
	segments := strings.Split(path, "/")
	if len(segments) == 1 {
		return true
	}
	if !o.Recursive {
		return false
	}
	for _, dir := range segments[:len(segments)-1] {
		for _, excluded := range o.ExcludeDirs {
			if dir == excluded {
				return false
			}
		}
	}
	return true
}
