// SPDX-License-Identifier: MIT

package sshserve

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "dymslex/pkg/dyms"
)

func TestServerStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state ServerState
		want  string
	}{
		{StateCreated, "created"},
		{StateStarting, "starting"},
		{StateRunning, "running"},
		{StateStopping, "stopping"},
		{StateStopped, "stopped"},
		{StateFailed, "failed"},
		{ServerState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ServerState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestNewServerStartsInCreatedState(t *testing.T) {
	t.Parallel()

	srv := New(DefaultConfig())
	if got := srv.State(); got != StateCreated {
		t.Errorf("State() = %s, want created", got)
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true for a server that was never started")
	}
}

func TestStopBeforeStart(t *testing.T) {
	t.Parallel()

	srv := New(DefaultConfig())
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if got := srv.State(); got != StateStopped {
		t.Errorf("State() = %s, want stopped", got)
	}

	// Stop is idempotent
	if err := srv.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestStartWithCancelledContext(t *testing.T) {
	t.Parallel()

	srv := New(DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := srv.Start(ctx); err == nil {
		t.Fatal("Start() with cancelled context should fail")
	}
	if got := srv.State(); got != StateFailed {
		t.Errorf("State() = %s, want failed", got)
	}
}

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.RootDir = t.TempDir()

	srv := New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !srv.IsRunning() {
		t.Error("IsRunning() = false after successful Start()")
	}
	if srv.Port() == 0 {
		t.Error("Port() = 0 after binding to an auto-selected port")
	}
	if !strings.HasPrefix(srv.Address(), "127.0.0.1:") {
		t.Errorf("Address() = %q, want 127.0.0.1:*", srv.Address())
	}

	if err := srv.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if got := srv.State(); got != StateStopped {
		t.Errorf("State() = %s, want stopped", got)
	}
}

func TestStartTwiceFails(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.RootDir = t.TempDir()

	srv := New(cfg)

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = srv.Stop() })

	if err := srv.Start(ctx); err == nil {
		t.Error("second Start() should fail")
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "prog.dyms"), []byte("let x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.RootDir = root
	srv := New(cfg)

	tests := []struct {
		name      string
		requested string
		wantErr   bool
	}{
		{name: "plain file", requested: "prog.dyms", wantErr: false},
		{name: "missing file", requested: "nope.dyms", wantErr: true},
		{name: "directory", requested: "sub", wantErr: true},
		{name: "absolute path", requested: "/etc/passwd", wantErr: true},
		{name: "parent escape", requested: "../outside.dyms", wantErr: true},
		{name: "nested escape", requested: "sub/../../outside.dyms", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := srv.resolvePath(tt.requested)
			if (err != nil) != tt.wantErr {
				t.Errorf("resolvePath(%q) error = %v, wantErr %v", tt.requested, err, tt.wantErr)
			}
		})
	}
}
