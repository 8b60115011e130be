package envfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/envvault/envvault.go/envfile"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "empty",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:  "single-pair",
			input: "SECRET_KEY=hunter2\n",
			expected: map[string]string{
				"SECRET_KEY": "hunter2",
			},
		},
		{
			name: "multiple-pairs",
			input: strings.Join([]string{
				"SECRET_KEY=hunter2",
				"ALGORITHM=HS256",
				"DATABASE_URL=sqlite:///./app.db",
			}, "\n"),
			expected: map[string]string{
				"SECRET_KEY":   "hunter2",
				"ALGORITHM":    "HS256",
				"DATABASE_URL": "sqlite:///./app.db",
			},
		},
		{
			name: "blank-lines-and-comments",
			input: strings.Join([]string{
				"# smtp settings",
				"",
				"SMTP_SERVER=smtp.example.com",
				"   ",
				"  # indented comment",
				"SMTP_PORT=587",
			}, "\n"),
			expected: map[string]string{
				"SMTP_SERVER": "smtp.example.com",
				"SMTP_PORT":   "587",
			},
		},
		{
			name:  "value-may-contain-equals",
			input: "DATABASE_URL=postgres://u:p@localhost/db?sslmode=disable",
			expected: map[string]string{
				"DATABASE_URL": "postgres://u:p@localhost/db?sslmode=disable",
			},
		},
		{
			name:  "value-may-contain-spaces-after-first-char",
			input: "GREETING=hello world",
			expected: map[string]string{
				"GREETING": "hello world",
			},
		},
		{
			name:  "last-occurrence-wins",
			input: "KEY=first\nKEY=second",
			expected: map[string]string{
				"KEY": "second",
			},
		},
		{
			name:  "crlf",
			input: "SECRET_KEY=hunter2\r\nALGORITHM=HS256\r\n",
			expected: map[string]string{
				"SECRET_KEY": "hunter2",
				"ALGORITHM":  "HS256",
			},
		},
	}
	for _, tt := range tests {
		tt := tt // capture range variable for parallel testing
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			values, err := envfile.Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []int
	}{
		{
			name:  "no-equals",
			input: "JUSTAKEY",
			lines: []int{1},
		},
		{
			name:  "empty-key",
			input: "=value",
			lines: []int{1},
		},
		{
			name:  "space-before-equals",
			input: "KEY =value",
			lines: []int{1},
		},
		{
			name:  "space-after-equals",
			input: "KEY= value",
			lines: []int{1},
		},
		{
			name:  "indented-pair",
			input: "  KEY=value",
			lines: []int{1},
		},
		{
			name: "all-malformed-lines-reported",
			input: strings.Join([]string{
				"GOOD=1",
				"bad line",
				"ALSO_GOOD=2",
				"another bad = line",
			}, "\n"),
			lines: []int{2, 4},
		},
	}
	// Every row must actually run; parallel subtests outlive the loop, so a
	// dropped capture would leave all but the final row unexercised.
	var mu sync.Mutex
	ran := make(map[string]bool, len(tests))
	t.Cleanup(func() {
		if len(ran) != len(tests) {
			t.Errorf("expected %d rows to run, actual: %d (%v)", len(tests), len(ran), ran)
		}
	})
	for _, tt := range tests {
		tt := tt // capture range variable for parallel testing
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mu.Lock()
			ran[tt.name] = true
			mu.Unlock()
			_, err := envfile.Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var pe envfile.ParseErrors
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseErrors, actual: %T %v", err, err)
			}
			lines := make([]int, 0, len(pe))
			for _, e := range pe {
				lines = append(lines, e.Line)
			}
			if diff := cmp.Diff(tt.lines, lines); diff != "" {
				t.Errorf("malformed line numbers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(dir, ".env")
		content := "SECRET_KEY=hunter2\nALGORITHM=HS256\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		values, err := envfile.Load(path)
		if err != nil {
			t.Fatal(err)
		}
		expected := map[string]string{
			"SECRET_KEY": "hunter2",
			"ALGORITHM":  "HS256",
		}
		if diff := cmp.Diff(expected, values); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing-file", func(t *testing.T) {
		_, err := envfile.Load(filepath.Join(dir, "does-not-exist"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("malformed-surfaces-error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.env")
		if err := os.WriteFile(path, []byte("not a pair\n"), 0600); err != nil {
			t.Fatal(err)
		}
		_, err := envfile.Load(path)
		var pe envfile.ParseErrors
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseErrors, actual: %T %v", err, err)
		}
	})
}
