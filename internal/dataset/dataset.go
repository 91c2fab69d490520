// Package dataset loads chart data from files. YAML, JSON, CSV/TSV and
// Excel workbooks all decode into the same []data.Point, and Watch reports
// changes to a data file so previews can reload.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/util"
	"github.com/rileyhilliard/chartkit/pkg/data"
)

// Format is a data file encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a flag value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	case "xlsx", "xlsm", "excel":
		return FormatXLSX, nil
	}
	hint := util.DidYouMean(util.SuggestSimilar(s, formatNames, 2))
	if hint == "" {
		hint = "Use yaml, json, csv, tsv or xlsx"
	}
	return FormatAuto, errors.New(errors.ErrData,
		fmt.Sprintf("Unknown data format '%s'", s), hint)
}

var formatNames = []string{"yaml", "json", "csv", "tsv", "xlsx"}

// Options tunes Load.
type Options struct {
	// Format overrides detection from the file extension.
	Format Format
	// Sheet selects an Excel sheet; empty means the first one.
	Sheet string
	// Key selects the records under a top-level mapping key in YAML and
	// JSON documents. Empty tries "data" and then the document itself.
	Key    string
	Logger logger.Logger
}

// Load reads the data file at path. "-" reads standard input, which needs
// an explicit Format.
func Load(path string, opts Options) ([]data.Point, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	format := opts.Format
	if format == FormatAuto {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil || f == FormatAuto {
			return nil, errors.New(errors.ErrData,
				fmt.Sprintf("Can't tell the format of '%s'", path),
				"Name the file .yaml, .json, .csv, .tsv or .xlsx, or pass --format")
		}
		format = f
	}

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrData,
			fmt.Sprintf("Can't read data file '%s'", path),
			"Check the path exists and is readable")
	}

	points, err := Decode(raw, format, opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrData,
			fmt.Sprintf("Can't parse %s data in '%s'", format, path),
			hint(format))
	}
	log.Debug("loaded %d records from %s (%s)", len(points), path, format)
	return points, nil
}

// Decode parses raw bytes in the given format.
func Decode(raw []byte, format Format, opts Options) ([]data.Point, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(raw, opts.Key)
	case FormatJSON:
		return decodeJSON(raw, opts.Key)
	case FormatCSV:
		return decodeDelimited(raw, ',')
	case FormatTSV:
		return decodeDelimited(raw, '\t')
	case FormatXLSX:
		return decodeXLSX(raw, opts.Sheet)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func hint(f Format) string {
	switch f {
	case FormatCSV, FormatTSV:
		return "The first row must be a header; every other row is one record"
	case FormatXLSX:
		return "The first row of the sheet must be a header; pick the sheet with --sheet"
	default:
		return "Expect a list of records, or a mapping with a 'data' list"
	}
}

func decodeYAML(raw []byte, key string) ([]data.Point, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return records(doc, key)
}

func decodeJSON(raw []byte, key string) ([]data.Point, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return records(doc, key)
}

// records extracts the list of records from a decoded document.
func records(doc any, key string) ([]data.Point, error) {
	if doc == nil {
		return nil, nil
	}
	if m, ok := doc.(map[string]any); ok {
		switch {
		case key != "":
			v, found := m[key]
			if !found {
				return nil, fmt.Errorf("no key %q at the top level", key)
			}
			doc = v
		case m["data"] != nil:
			doc = m["data"]
		default:
			return []data.Point{data.Point(m)}, nil
		}
	}

	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of records, got %T", doc)
	}
	out := make([]data.Point, 0, len(list))
	for i, item := range list {
		switch rec := item.(type) {
		case map[string]any:
			out = append(out, data.Point(rec))
		case nil:
			out = append(out, data.Point{})
		default:
			// A bare number list is a single unnamed value series.
			if _, isMap := item.(map[any]any); isMap {
				return nil, fmt.Errorf("record %d has non-string keys", i)
			}
			out = append(out, data.Point{"value": rec})
		}
	}
	return out, nil
}

func decodeDelimited(raw []byte, sep rune) ([]data.Point, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return table(rows)
}

func decodeXLSX(raw []byte, sheet string) ([]data.Point, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (have %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return table(rows)
}

// table turns a header row plus data rows into records. Cells that parse
// as numbers become float64; blank cells are left out of the record.
func table(rows [][]string) ([]data.Point, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if header[i] == "" {
			header[i] = "col" + strconv.Itoa(i+1)
		}
	}

	out := make([]data.Point, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		p := make(data.Point, len(header))
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			p[header[i]] = cellValue(cell)
		}
		out = append(out, p)
	}
	return out, nil
}

func cellValue(s string) any {
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return f
	}
	return s
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
