package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"golang.org/x/tools/txtar"
)

//go:embed testdata/cases
var cases embed.FS

func TestCases(t *testing.T) {
	files, err := cases.ReadDir("testdata/cases")
	if err != nil {
		t.Fatal(fmt.Errorf("list test cases: %w", err))
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".txtar") {
			continue
		}

		t.Run(strings.TrimSuffix(file.Name(), ".txtar"), func(t *testing.T) {
			data, err := cases.ReadFile("testdata/cases/" + file.Name())
			if err != nil {
				t.Fatalf("read case %s: %s", file.Name(), err)
			}
			archive := txtar.Parse(data)

			bundle := filepath.Join(t.TempDir(), file.Name())
			if err := os.WriteFile(bundle, data, 0o644); err != nil {
				t.Fatal(err)
			}

			for _, line := range lines(member(t, archive, "resolve")) {
				offset, want, ok := strings.Cut(line, ": ")
				if !ok {
					t.Fatalf("malformed resolve expectation %q", line)
				}
				if _, err := strconv.Atoi(offset); err != nil {
					t.Fatalf("malformed offset in %q: %s", line, err)
				}

				t.Run("resolve-"+offset, func(t *testing.T) {
					code, got := runCmd(t, "resolve", "-bundle", bundle, "-offset", offset)
					if code != 0 {
						t.Fatalf("exit code %d", code)
					}
					if got != want+"\n" {
						t.Errorf("resolve: got %q, want %q", got, want)
					}
				})
			}

			t.Run("check", func(t *testing.T) {
				want := string(member(t, archive, "check"))
				wantCode := 0
				if want != "" {
					wantCode = 1
				}

				code, got := runCmd(t, "check", "-bundle", bundle)
				if code != wantCode {
					t.Errorf("exit code %d, want %d", code, wantCode)
				}
				if !reflect.DeepEqual(lines([]byte(want)), lines([]byte(got))) {
					deepequal.SideBySide(t, "reports", lines([]byte(want)), lines([]byte(got)))
				}
			})
		})
	}
}

func TestRun(t *testing.T) {
	tree := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(tree, []byte("kind: CompilationUnit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code int
	}{
		{
			name: "no command",
			args: nil,
			code: 2,
		},
		{
			name: "unknown command",
			args: []string{"lint"},
			code: 2,
		},
		{
			name: "bad flag",
			args: []string{"hash", "-nope"},
			code: 2,
		},
		{
			name: "no input",
			args: []string{"hash"},
			code: 1,
		},
		{
			name: "both inputs",
			args: []string{"hash", "-tree", tree, "-bundle", tree},
			code: 1,
		},
		{
			name: "resolve without offset",
			args: []string{"resolve", "-tree", tree},
			code: 1,
		},
		{
			name: "nothing at offset",
			args: []string{"resolve", "-tree", tree, "-offset", "3"},
			code: 1,
		},
		{
			name: "hash",
			args: []string{"hash", "-tree", tree},
			code: 0,
		},
		{
			name: "missing config",
			args: []string{"hash", "-tree", tree, "-config", tree + ".missing"},
			code: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := runCmd(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code %d, want %d", code, tt.code)
			}
		})
	}
}

func TestHashIgnoresComments(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.yaml")
	commented := filepath.Join(dir, "commented.yaml")

	const tree = `
kind: CompilationUnit
children:
  - kind: ClassDeclaration
    name: A
`
	const withComment = tree + `    children:
      - kind: LineComment
        value: a comment
`
	if err := os.WriteFile(plain, []byte(tree), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(commented, []byte(withComment), 0o644); err != nil {
		t.Fatal(err)
	}

	_, a := runCmd(t, "hash", "-tree", plain)
	_, b := runCmd(t, "hash", "-tree", commented)
	if a == "" || a != b {
		t.Errorf("hashes differ: %q and %q", a, b)
	}
}

func runCmd(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	if code != 0 {
		t.Log(stderr.String())
	}

	return code, stdout.String()
}

func member(t *testing.T, a *txtar.Archive, name string) []byte {
	t.Helper()

	for _, f := range a.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("case has no %s section", name)
	return nil
}

func lines(data []byte) []string {
	var res []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}

	return res
}
