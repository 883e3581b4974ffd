// SPDX-License-Identifier: MIT

package plugin

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dymslex/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

//go:embed manifest_schema.cue
var manifestSchema []byte

//go:embed plugin.toml
var embeddedManifest []byte

type (
	// Manifest is the packaging descriptor of a lexer plugin distribution.
	Manifest struct {
		// Name is the distribution name.
		Name string `toml:"name" json:"name"`
		// Version is the semantic version of the distribution.
		Version string `toml:"version" json:"version"`
		// Description is a one-line human-readable summary.
		Description string `toml:"description" json:"description"`
		// Author is the distribution author.
		Author string `toml:"author" json:"author"`
		// License is the SPDX license identifier.
		License string `toml:"license" json:"license"`
		// Classifiers are metadata tags for discovery and indexing.
		Classifiers []string `toml:"classifiers" json:"classifiers"`
		// Requires declares the host framework dependency.
		Requires HostRequirement `toml:"requires" json:"requires"`
		// EntryPoints maps language identifiers to lexer registry names.
		EntryPoints map[string]string `toml:"entry_points" json:"entry_points"`
	}

	// HostRequirement is the single runtime dependency of a lexer plugin:
	// the host highlighting framework and the version range it must satisfy.
	HostRequirement struct {
		// Host is the module path of the host framework.
		Host string `toml:"host" json:"host"`
		// Constraint is a version constraint such as ">= 2.0".
		Constraint string `toml:"constraint" json:"constraint"`
	}
)

// Parse decodes and validates a manifest from TOML bytes. The filename is
// used in error messages only.
func Parse(data []byte, filename string) (*Manifest, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	// CUE encodes nil slices and maps as null, which the schema rejects;
	// normalize them so validation reports the actual problem.
	if m.Classifiers == nil {
		m.Classifiers = []string{}
	}
	if m.EntryPoints == nil {
		m.EntryPoints = map[string]string{}
	}

	if err := cueutil.ValidateValue(manifestSchema, "#Manifest", &m, cueutil.WithFilename(filename)); err != nil {
		return nil, err
	}

	if len(m.EntryPoints) == 0 {
		return nil, fmt.Errorf("%s: entry_points: at least one entry point is required", filename)
	}

	return &m, nil
}

var defaultManifest = sync.OnceValues(func() (*Manifest, error) {
	return Parse(embeddedManifest, "plugin.toml")
})

// Default returns the embedded manifest describing this distribution.
func Default() (*Manifest, error) {
	return defaultManifest()
}

// TOML encodes the manifest as TOML.
func (m *Manifest) TOML() ([]byte, error) {
	return toml.Marshal(m)
}

// Languages returns the declared language identifiers in sorted order.
func (m *Manifest) Languages() []string {
	ids := make([]string, 0, len(m.EntryPoints))
	for id := range m.EntryPoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Markdown renders the manifest as a markdown document for terminal display.
func (m *Manifest) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s %s\n\n", m.Name, m.Version)
	fmt.Fprintf(&sb, "%s\n\n", m.Description)
	fmt.Fprintf(&sb, "- **Author**: %s\n", m.Author)
	fmt.Fprintf(&sb, "- **License**: %s\n", m.License)
	fmt.Fprintf(&sb, "- **Requires**: %s %s\n", m.Requires.Host, m.Requires.Constraint)

	sb.WriteString("\n## Entry points\n\n")
	for _, id := range m.Languages() {
		fmt.Fprintf(&sb, "- `%s` -> `%s`\n", id, m.EntryPoints[id])
	}

	if len(m.Classifiers) > 0 {
		sb.WriteString("\n## Classifiers\n\n")
		for _, c := range m.Classifiers {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	return sb.String()
}
