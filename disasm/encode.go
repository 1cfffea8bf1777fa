package disasm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a listing output format.
type Format string

const (
	FORMAT_TEXT = Format("text")
	FORMAT_JSON = Format("json")
	FORMAT_YAML = Format("yaml")
)

// Formats lists the supported output formats.
var Formats = []Format{FORMAT_TEXT, FORMAT_JSON, FORMAT_YAML}

// ParseFormat returns the format named, ignoring case.
func ParseFormat(name string) (format Format, err error) {
	format = Format(strings.ToLower(name))
	switch format {
	case FORMAT_TEXT, FORMAT_JSON, FORMAT_YAML:
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, name)
	}

	return
}

// Records returns the serialized forms of the lines.
func Records(lines []Line) (records []Record) {
	records = make([]Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, line.Record())
	}

	return
}

// Encode writes the lines in the format. Text output is one line per word;
// JSON and YAML output is a single list of records.
func Encode(w io.Writer, format Format, lines []Line) (err error) {
	switch format {
	case FORMAT_TEXT:
		bw := bufio.NewWriter(w)
		for _, line := range lines {
			_, err = fmt.Fprintln(bw, line.String())
			if err != nil {
				return
			}
		}
		err = bw.Flush()
	case FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(Records(lines))
	case FORMAT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(Records(lines))
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, string(format))
	}

	return
}
