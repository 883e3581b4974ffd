// SPDX-License-Identifier: MIT

// Package tui contains the bubbletea components behind the interactive
// commands. Currently that is the scrollable pager used to view highlighted
// sources.
package tui
