// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"strings"
	"testing"

	"dymslex/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	})

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-01-01"
	got := getVersionString()
	for _, want := range []string{"1.2.3", "abc123", "2026-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("getVersionString() = %q, missing %q", got, want)
		}
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("resolve lexer").
		WithResource("dyms").
		WithSuggestion("Check the identifier").
		BuildError()

	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "resolve lexer") {
		t.Errorf("formatted error missing operation: %q", got)
	}
	if !strings.Contains(got, "Check the identifier") {
		t.Errorf("formatted error missing suggestion: %q", got)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("boom")
	err := &ExitError{Code: 3, Err: wrapped}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want boom", err.Error())
	}
	if !errors.Is(err, wrapped) {
		t.Error("ExitError should unwrap to its cause")
	}

	bare := &ExitError{Code: 2}
	if bare.Error() != "exit status 2" {
		t.Errorf("Error() = %q, want exit status 2", bare.Error())
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	want := []string{"highlight", "tokens", "check", "info", "pager", "serve", "config", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
