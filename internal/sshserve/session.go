// SPDX-License-Identifier: MIT

package sshserve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dymslex/internal/highlight"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// viewMiddleware serves highlighted file views. A session command names a
// file relative to RootDir; an empty command lists the viewable files.
func (s *Server) viewMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			cmd := sess.Command()

			if len(cmd) == 0 {
				s.listFiles(sess)
				return
			}

			s.viewFile(sess, cmd[0])
		}
	}
}

// listFiles writes the relative paths of viewable files under RootDir.
func (s *Server) listFiles(sess ssh.Session) {
	var files []string

	err := filepath.WalkDir(s.cfg.RootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories (.git and friends)
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if highlight.Match(path) == nil {
			return nil
		}
		rel, err := filepath.Rel(s.cfg.RootDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		s.logger.Error("failed to list files", "error", err)
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		_ = sess.Exit(1)
		return
	}

	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintln(sess, "No highlightable files found.")
	} else {
		fmt.Fprintln(sess, "Viewable files (ssh <host> <path> to view):")
		for _, f := range files {
			fmt.Fprintf(sess, "  %s\n", f)
		}
	}
	_ = sess.Exit(0)
}

// viewFile renders a highlighted view of the requested file to the session.
func (s *Server) viewFile(sess ssh.Session, requested string) {
	path, err := s.resolvePath(requested)
	if err != nil {
		s.logger.Warn("rejected file request", "user", sess.User(), "path", requested, "error", err)
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		_ = sess.Exit(1)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		_ = sess.Exit(1)
		return
	}

	lexer := highlight.Match(path)
	if lexer == nil {
		var resolveErr error
		lexer, resolveErr = highlight.Resolve("plaintext")
		if resolveErr != nil {
			fmt.Fprintf(sess.Stderr(), "Error: no lexer for %s\n", requested)
			_ = sess.Exit(1)
			return
		}
	}

	if err := highlight.RenderWith(sess, lexer, s.cfg.Style, s.cfg.Formatter, string(data)); err != nil {
		s.logger.Error("render failed", "path", requested, "error", err)
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		_ = sess.Exit(1)
		return
	}

	s.logger.Info("served file", "user", sess.User(), "path", requested)
	_ = sess.Exit(0)
}

// resolvePath confines a client-supplied path to RootDir.
func (s *Server) resolvePath(requested string) (string, error) {
	if filepath.IsAbs(requested) {
		return "", fmt.Errorf("absolute paths are not allowed: %s", requested)
	}

	root, err := filepath.Abs(s.cfg.RootDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, filepath.FromSlash(requested))

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the served directory: %s", requested)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", requested)
	}
	if info.IsDir() {
		return "", fmt.Errorf("is a directory: %s", requested)
	}

	return path, nil
}
