package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLinkCommand(t *testing.T) {
	tests := []struct {
		name      string
		overwrite bool
		setup     func(t *testing.T, target string)
		wantError bool
	}{
		{
			name: "creates a link",
		},
		{
			name: "refuses to clobber without overwrite",
			setup: func(t *testing.T, target string) {
				if err := os.Symlink("elsewhere", target); err != nil {
					t.Fatalf("setup: %v", err)
				}
			},
			wantError: true,
		},
		{
			name:      "replaces with overwrite",
			overwrite: true,
			setup: func(t *testing.T, target string) {
				if err := os.Symlink("elsewhere", target); err != nil {
					t.Fatalf("setup: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			source := filepath.Join(tmp, "source")
			if err := os.Mkdir(source, 0o755); err != nil {
				t.Fatalf("setup: %v", err)
			}
			target := filepath.Join(tmp, "target")
			if tt.setup != nil {
				tt.setup(t, target)
			}

			cmd := newLinkCmd()
			buf := &bytes.Buffer{}
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			args := []string{source, target}
			if tt.overwrite {
				args = append(args, "--overwrite")
			}
			cmd.SetArgs(args)

			err := cmd.Execute()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("link command failed: %v", err)
			}

			if !strings.Contains(buf.String(), "linked "+target) {
				t.Errorf("expected link report, got: %s", buf.String())
			}
			resolved, err := os.Readlink(target)
			if err != nil {
				t.Fatalf("readlink: %v", err)
			}
			if resolved != source {
				t.Errorf("link points at %q, want %q", resolved, source)
			}
		})
	}
}

func TestLinkCommandArgCount(t *testing.T) {
	cmd := newLinkCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-one"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an argument-count error")
	}
}
