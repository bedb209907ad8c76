package fireblocks

import (
	"fmt"
	"strings"
)

// OutputFormat selects how the external display layer renders results.
// The zero value is OutputTable.
type OutputFormat int

const (
	// OutputTable renders an ascii table.
	OutputTable OutputFormat = iota
	// OutputTSV renders tab-separated values.
	OutputTSV
	// OutputJSON renders JSON.
	OutputJSON
)

func (o OutputFormat) String() string {
	switch o {
	case OutputTSV:
		return "tsv"
	case OutputJSON:
		return "json"
	default:
		return "table"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (o OutputFormat) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Values are matched
// case-insensitively.
func (o *OutputFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "table":
		*o = OutputTable
	case "tsv":
		*o = OutputTSV
	case "json":
		*o = OutputJSON
	default:
		return fmt.Errorf("unknown output format %q (expected table, tsv or json)", string(text))
	}
	return nil
}
