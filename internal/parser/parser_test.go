package parser

import (
	"reflect"
	"testing"
)

func TestParseSimpleCommand(t *testing.T) {
	cmd := Parse("touch file.txt")

	if len(cmd.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(cmd.Segments))
	}
	seg := cmd.Segments[0]
	if seg.Program != "touch" {
		t.Errorf("expected program touch, got %s", seg.Program)
	}
	if !reflect.DeepEqual(seg.Args, []string{"file.txt"}) {
		t.Errorf("expected args [file.txt], got %v", seg.Args)
	}
}

func TestParseEnvPrefix(t *testing.T) {
	cmd := Parse("GOOS=linux go build ./...")

	if len(cmd.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(cmd.Segments))
	}
	seg := cmd.Segments[0]
	if seg.Env["GOOS"] != "linux" {
		t.Errorf("expected GOOS=linux, got %v", seg.Env)
	}
	if seg.Program != "go" {
		t.Errorf("expected program go, got %s", seg.Program)
	}
}

func TestParseFlags(t *testing.T) {
	cmd := Parse("cp -r src dst")

	seg := cmd.Segments[0]
	if !reflect.DeepEqual(seg.Flags, []string{"-r"}) {
		t.Errorf("expected flags [-r], got %v", seg.Flags)
	}
	if !reflect.DeepEqual(seg.Args, []string{"src", "dst"}) {
		t.Errorf("expected args [src dst], got %v", seg.Args)
	}
}

func TestParseRedirections(t *testing.T) {
	tests := []struct {
		name   string
		cmd    string
		op     string
		target string
	}{
		{"spaced", "echo test > out.txt", ">", "out.txt"},
		{"glued", "echo test >out.txt", ">", "out.txt"},
		{"append", "echo test >> log.txt", ">>", "log.txt"},
		{"append glued", "echo test >>log.txt", ">>", "log.txt"},
		{"stdout fd", "cmd 1> out.txt", ">", "out.txt"},
		{"stderr fd", "cmd 2> err.log", ">", "err.log"},
		{"absolute path", "echo x > /tmp/p/out.txt", ">", "/tmp/p/out.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.cmd)
			if len(cmd.Segments) != 1 {
				t.Fatalf("expected 1 segment, got %d", len(cmd.Segments))
			}
			redirs := cmd.Segments[0].Redirections
			if len(redirs) != 1 {
				t.Fatalf("expected 1 redirection, got %v", redirs)
			}
			if redirs[0].Op != tt.op {
				t.Errorf("expected op %s, got %s", tt.op, redirs[0].Op)
			}
			if redirs[0].Target != tt.target {
				t.Errorf("expected target %s, got %s", tt.target, redirs[0].Target)
			}
		})
	}
}

func TestParseFdDuplicationHasNoTarget(t *testing.T) {
	cmd := Parse("make test > build.log 2>&1")

	seg := cmd.Segments[0]
	if len(seg.Redirections) != 1 {
		t.Fatalf("expected 1 redirection, got %v", seg.Redirections)
	}
	if seg.Redirections[0].Target != "build.log" {
		t.Errorf("expected target build.log, got %s", seg.Redirections[0].Target)
	}
}

func TestParseSegmentSeparators(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		programs []string
	}{
		{"pipe", "cat a | tee b", []string{"cat", "tee"}},
		{"and", "mkdir x && touch x/y", []string{"mkdir", "touch"}},
		{"or", "test -f a || touch a", []string{"test", "touch"}},
		{"semicolon", "cd /tmp; rm junk", []string{"cd", "rm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.cmd)
			if len(cmd.Segments) != len(tt.programs) {
				t.Fatalf("expected %d segments, got %d", len(tt.programs), len(cmd.Segments))
			}
			for i, p := range tt.programs {
				if cmd.Segments[i].Program != p {
					t.Errorf("segment %d: expected program %s, got %s", i, p, cmd.Segments[i].Program)
				}
			}
		})
	}
}

func TestParseQuotes(t *testing.T) {
	cmd := Parse(`echo "a > b" 'c | d'`)

	seg := cmd.Segments[0]
	if len(cmd.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(cmd.Segments))
	}
	if len(seg.Redirections) != 0 {
		t.Errorf("quoted > must not become a redirection: %v", seg.Redirections)
	}
	if !reflect.DeepEqual(seg.Args, []string{"a > b", "c | d"}) {
		t.Errorf("expected quoted args preserved, got %v", seg.Args)
	}
}

func TestParseEmpty(t *testing.T) {
	cmd := Parse("   ")
	if len(cmd.Segments) != 0 {
		t.Errorf("expected no segments, got %v", cmd.Segments)
	}
}
