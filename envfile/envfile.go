package envfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/envvault/envvault.go/internal/limitopen"
)

const (
	// DefaultMaxFileSize is the soft size limit applied when reading an
	// overlay file from disk.
	DefaultMaxFileSize = 1024 * 1024

	// HardLimitMultiplier is applied on top of DefaultMaxFileSize to get the
	// hard limit, above which Load fails outright.
	HardLimitMultiplier = 10
)

const promNamespace = "envfile"

var parseFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: promNamespace,
	Name:      "parse_failure_total",
	Help:      "Total number of overlay file parse failures",
})

// MalformedLineError is returned for every line in an overlay file that does
// not have the KEY=value shape.
type MalformedLineError struct {
	// Line is the 1-based line number inside the file.
	Line int

	// Text is the offending line verbatim.
	Text string
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("envfile: line %d is not in KEY=value form: %q", e.Line, e.Text)
}

// ParseErrors is the error type returned by Parse when one or more lines are
// malformed.
//
// It carries every malformed line, in file order, so that the operator can
// fix the whole file in a single pass.
type ParseErrors []MalformedLineError

func (pe ParseErrors) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "envfile: %d malformed line(s)", len(pe))
	for i, e := range pe {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Parse reads KEY=value pairs from r.
//
// The accepted shape is strict: a non-blank, non-comment line must be
// KEY=value with a non-empty key and no whitespace around the "=".
// Blank lines and lines whose first non-blank character is "#" are skipped.
// Lines violating the shape are not silently dropped: they're all collected
// and returned together as a ParseErrors error, alongside the pairs that did
// parse.
//
// When the same key appears more than once the last occurrence wins.
func Parse(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	var malformed ParseErrors

	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitLine(line)
		if !ok {
			malformed = append(malformed, MalformedLineError{
				Line: i,
				Text: line,
			})
			continue
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("envfile: failed to read: %w", err)
	}

	if len(malformed) > 0 {
		return values, malformed
	}
	return values, nil
}

// splitLine splits a single KEY=value line, rejecting any line where the key
// is empty, contains whitespace, or where whitespace surrounds the "=".
func splitLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found || key == "" {
		return "", "", false
	}
	if strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	if strings.HasPrefix(value, " ") || strings.HasPrefix(value, "\t") {
		return "", "", false
	}
	return key, value, true
}

// Load reads and parses the overlay file at path.
//
// The file is read through a size-limited reader; a file larger than
// DefaultMaxFileSize*HardLimitMultiplier fails outright.
func Load(path string) (map[string]string, error) {
	f, err := limitopen.OpenWithLimit(path, DefaultMaxFileSize, DefaultMaxFileSize*HardLimitMultiplier)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		parseFailures.Inc()
		return nil, fmt.Errorf("envfile: failed to parse %q: %w", path, err)
	}
	return values, nil
}
