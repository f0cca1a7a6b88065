package output

import (
	"time"

	"github.com/masmgr/gitlineage/internal/lineage"
)

// Compile-time interface conformance checks.
var (
	_ GraphWriter = (*DOTGraphWriter)(nil)
	_ GraphWriter = (*JSONGraphWriter)(nil)
	_ GraphWriter = (*MarkdownGraphWriter)(nil)
	_ GraphWriter = (*ConsoleGraphWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatDOT      OutputFormat = "dot"
	FormatJSON     OutputFormat = "json"
	FormatMermaid  OutputFormat = "mermaid"
	FormatMarkdown OutputFormat = "markdown"
	FormatConsole  OutputFormat = "console"
)

// DefaultShortHashLength is the number of hash characters used for node ids.
const DefaultShortHashLength = 7

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format          OutputFormat
	OutputPath      string
	ShortHashLength int
}

func (o OutputOptions) shortLength() int {
	if o.ShortHashLength <= 0 {
		return DefaultShortHashLength
	}
	return o.ShortHashLength
}

// GraphReport holds a lineage graph together with where it came from.
type GraphReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Graph       *lineage.Graph
}

// GraphWriter writes lineage graph reports.
type GraphWriter interface {
	Write(report *GraphReport, options OutputOptions) error
}

// NewGraphWriter creates a graph writer for the specified format.
func NewGraphWriter(format OutputFormat) GraphWriter {
	switch format {
	case FormatJSON:
		return &JSONGraphWriter{}
	case FormatMermaid, FormatMarkdown:
		return &MarkdownGraphWriter{}
	case FormatConsole:
		return &ConsoleGraphWriter{}
	default:
		return &DOTGraphWriter{}
	}
}
