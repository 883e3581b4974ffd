// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"strings"
	"testing"

	_ "dymslex/pkg/dyms"
)

func TestCheckCommandPasses(t *testing.T) {
	cmd := newCheckCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("check failed: %v\noutput:\n%s", err, out.String())
	}

	for _, want := range []string{"manifest", "dyms", "constraint"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("check output missing %q:\n%s", want, out.String())
		}
	}
}

func TestInfoCommandRaw(t *testing.T) {
	cmd := newInfoCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--raw"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("info --raw failed: %v", err)
	}

	for _, want := range []string{"dymslex", "0.2.0", "entry_points"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("info output missing %q:\n%s", want, out.String())
		}
	}
}
