// SPDX-License-Identifier: MIT

// Package sshserve provides an SSH server using the Wish library that serves
// read-only highlighted views of files under a root directory. Clients run
// "ssh <host> <path>" to receive the rendered file, or connect with no
// command to list the viewable files.
package sshserve
