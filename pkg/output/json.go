package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jingkaihe/claudelist/pkg/catalog"
)

// JSONFormatter renders indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, listing catalog.Listing) error {
	return writeJSON(w, normalize(listing))
}

func (f *JSONFormatter) FormatDetail(w io.Writer, item catalog.DetailItem, raw bool) error {
	detail, err := toRawDetail(item, raw)
	if err != nil {
		return err
	}
	return writeJSON(w, detail)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error generating JSON output")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// YAMLFormatter renders YAML documents with the same shape as the JSON output.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format(w io.Writer, listing catalog.Listing) error {
	return writeYAML(w, normalize(listing))
}

func (f *YAMLFormatter) FormatDetail(w io.Writer, item catalog.DetailItem, raw bool) error {
	detail, err := toRawDetail(item, raw)
	if err != nil {
		return err
	}
	return writeYAML(w, detail)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "error generating YAML output")
	}
	return enc.Close()
}

// normalize replaces nil slices so empty listings serialize as [] rather than null.
func normalize(listing catalog.Listing) catalog.Listing {
	if listing.Skills == nil {
		listing.Skills = []catalog.Skill{}
	}
	if listing.Servers == nil {
		listing.Servers = []catalog.Server{}
	}
	return listing
}
