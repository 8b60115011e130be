// Package configfile parses YAML configuration files with environment
// variable substitution.
package configfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/envvault/envvault.go/internal/limitopen"
)

// Size limits applied when reading a config file from disk.
const (
	maxFileSize = 1024 * 1024
	hardLimit   = maxFileSize * 10
)

type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	// Keep flushing pending data if we have it
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}

	// Fill the buffer with some data
	if r.lines.Scan() {
		r.buffer.WriteString(os.ExpandEnv(r.lines.Text()))
		r.buffer.WriteString("\n")
	} else {
		return 0, io.EOF
	}

	// Return some data to satisfy the reader
	return r.buffer.Read(buf)
}

// ParseStrictFile parses configuration from the file at the given path into
// ptr, which should be a pointer to a struct.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing.
func ParseStrictFile(path string, ptr interface{}) error {
	f, err := limitopen.OpenWithLimit(path, maxFileSize, hardLimit)
	if err != nil {
		return err // contains filename
	}
	defer f.Close() // safe to blindly close read-only files

	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseStrictYAML(f, ptr)
	default:
		return fmt.Errorf("configfile: unsupported config extension %q", ext)
	}
}

// ParseStrictYAML parses YAML read from the given Reader into ptr, which
// should be a pointer to a struct.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing. Unknown fields are a parse error.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	reader = &envsubstReader{
		lines: bufio.NewScanner(reader),
	}

	dec := yaml.NewDecoder(reader)
	dec.SetStrict(true)
	if err := dec.Decode(ptr); err != nil {
		return fmt.Errorf("configfile: parsing YAML into %T: %w", ptr, err)
	}
	return nil
}
