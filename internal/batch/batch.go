// Package batch computes Package Family Names for lists of identity records
// read from YAML, JSON or JSONC documents.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/russellbanks/package-family-name/pfn"
)

// Format names a document format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// OutputFormats lists the formats results can be written in.
var OutputFormats = []Format{FormatText, FormatJSON, FormatYAML}

// Request is one identity name and publisher pair.
type Request struct {
	Name      string `json:"name" yaml:"name"`
	Publisher string `json:"publisher" yaml:"publisher"`
}

// Result is a Request with its computed identifiers.
type Result struct {
	Name              string                `json:"name" yaml:"name"`
	Publisher         string                `json:"publisher" yaml:"publisher"`
	PublisherID       pfn.PublisherID       `json:"publisherId" yaml:"publisherId"`
	PackageFamilyName pfn.PackageFamilyName `json:"packageFamilyName" yaml:"packageFamilyName"`
}

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range OutputFormats {
		if f == o {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s (valid: text, json, yaml)", s)
}

// ParseInputFormat validates an input format name.
func ParseInputFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatJSONC, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported input format: %s (valid: json, jsonc, yaml)", s)
	}
}

// InputFormatFor picks an input format from a file extension.
// Unknown extensions and stdin are read as YAML, which also accepts plain JSON.
func InputFormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	default:
		return FormatYAML
	}
}

// Read decodes a list of requests from r.
// An empty document yields no requests.
func Read(r io.Reader, format Format) ([]Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var reqs []Request
	switch format {
	case FormatJSON, FormatJSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", format, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&reqs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
	return reqs, nil
}

// ReadFile reads requests from path, or from stdin when path is "-".
func ReadFile(path string, stdin io.Reader, format Format) ([]Request, error) {
	if path == "-" {
		return Read(stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reqs, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reqs, nil
}

// Compute computes a Result for every request, preserving order.
func Compute(reqs []Request) []Result {
	results := make([]Result, len(reqs))
	for i, req := range reqs {
		name := pfn.New(req.Name, req.Publisher)
		results[i] = Result{
			Name:              req.Name,
			Publisher:         req.Publisher,
			PublisherID:       name.PublisherID,
			PackageFamilyName: name,
		}
	}
	return results
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("cannot encode as %s", format)
	}
}

// Write writes results in format. Text output is one Package Family Name per line.
func Write(w io.Writer, results []Result, format Format) error {
	if format != FormatText {
		if results == nil {
			results = []Result{}
		}
		return Encode(w, results, format)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.PackageFamilyName); err != nil {
			return err
		}
	}
	return nil
}
