// SPDX-License-Identifier: MIT

package issue

import "testing"

func TestGetKnownIssues(t *testing.T) {
	t.Parallel()

	ids := []Id{
		LexerNotRegisteredId,
		SourceFileNotFoundId,
		ManifestInvalidId,
		UnknownStyleId,
		UnknownFormatterId,
		ConfigLoadFailedId,
		ServeStartFailedId,
	}

	for _, id := range ids {
		if got := Get(id); got == nil {
			t.Errorf("expected issue registered for id %d", id)
		} else if got.Id() != id {
			t.Errorf("issue id mismatch: got %d, want %d", got.Id(), id)
		}
	}
}

func TestValuesCoversAllIssues(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != len(issues) {
		t.Errorf("expected %d issues, got %d", len(issues), len(vals))
	}
	for _, i := range vals {
		if i.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", i.Id())
		}
	}
}
