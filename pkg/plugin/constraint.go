// SPDX-License-Identifier: MIT

package plugin

import (
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

// ErrConstraintNotSatisfied is the sentinel error wrapped by
// ConstraintError when the host version falls outside the declared range.
var ErrConstraintNotSatisfied = errors.New("host version constraint not satisfied")

// ConstraintError reports a host framework version outside the manifest's
// declared range. It wraps ErrConstraintNotSatisfied for errors.Is().
type ConstraintError struct {
	Host       string
	Constraint string
	Version    string
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("host %s version %s does not satisfy constraint %q", e.Host, e.Version, e.Constraint)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ConstraintError) Unwrap() error { return ErrConstraintNotSatisfied }

// Constraint is a parsed version constraint, e.g. ">= 2.0".
type Constraint struct {
	Op    string
	Parts []int
}

var constraintRe = regexp.MustCompile(`^(>=|>|==|<=|<) *([0-9]+(?:\.[0-9]+)*)$`)

// ParseConstraint parses a constraint of the form "<op> <version>" where op
// is one of >=, >, ==, <=, < and version is a dotted numeric version.
func ParseConstraint(s string) (Constraint, error) {
	m := constraintRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Constraint{}, fmt.Errorf("invalid version constraint %q", s)
	}
	return Constraint{Op: m[1], Parts: parseVersionParts(m[2])}, nil
}

// SatisfiedBy reports whether the given version satisfies the constraint.
// The version may carry a leading "v" and pre-release or build suffixes,
// which are ignored for comparison.
func (c Constraint) SatisfiedBy(version string) bool {
	got := parseVersionParts(normalizeVersion(version))

	cmp := compareParts(got, c.Parts)
	switch c.Op {
	case ">=":
		return cmp >= 0
	case ">":
		return cmp > 0
	case "==":
		return cmp == 0
	case "<=":
		return cmp <= 0
	case "<":
		return cmp < 0
	default:
		return false
	}
}

// String returns the canonical form of the constraint.
func (c Constraint) String() string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = strconv.Itoa(p)
	}
	return c.Op + " " + strings.Join(parts, ".")
}

// CheckHost verifies that the linked host framework satisfies the manifest's
// declared version constraint. The host version is read from the binary's
// build info; when build info is unavailable (e.g. in tests of intermediate
// builds) the major version encoded in the host module path is used instead.
func (m *Manifest) CheckHost() error {
	c, err := ParseConstraint(m.Requires.Constraint)
	if err != nil {
		return fmt.Errorf("manifest requires.constraint: %w", err)
	}

	version := hostVersion(m.Requires.Host)
	if !c.SatisfiedBy(version) {
		return &ConstraintError{
			Host:       m.Requires.Host,
			Constraint: m.Requires.Constraint,
			Version:    version,
		}
	}
	return nil
}

// hostVersion resolves the version of the given module from build info,
// falling back to the major version suffix of the module path ("/v2" -> 2.0).
func hostVersion(modulePath string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep == nil {
				continue
			}
			if dep.Path == modulePath && dep.Version != "" && dep.Version != "(devel)" {
				return dep.Version
			}
		}
	}

	if i := strings.LastIndex(modulePath, "/v"); i >= 0 {
		if major, err := strconv.Atoi(modulePath[i+2:]); err == nil {
			return fmt.Sprintf("%d.0", major)
		}
	}
	return "0.0"
}

func normalizeVersion(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	return v
}

func parseVersionParts(v string) []int {
	fields := strings.Split(v, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	return parts
}

// compareParts compares two dotted versions element-wise, treating missing
// elements as zero. Returns -1, 0 or 1.
func compareParts(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
