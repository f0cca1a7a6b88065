package output

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONGraphWriter writes lineage graphs as JSON.
type JSONGraphWriter struct{}

// JSONGraphReport is the JSON output structure for a lineage graph.
type JSONGraphReport struct {
	RepoPath    string     `json:"repo"`
	GeneratedAt string     `json:"generatedAt"`
	Nodes       []JSONNode `json:"nodes"`
	Edges       []JSONEdge `json:"edges"`
}

// JSONNode is the JSON output structure for a single commit node.
type JSONNode struct {
	ID      string `json:"id"`
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Origin  string `json:"origin"`
}

// JSONEdge is the JSON output structure for an ancestor to descendant edge.
type JSONEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Write outputs the graph as JSON.
func (w *JSONGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	g := report.Graph
	ids := shortIDs(g, options.shortLength())

	nodes := make([]JSONNode, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		nodes = append(nodes, JSONNode{
			ID:      ids[n.ID()],
			SHA:     n.ID(),
			Message: n.Message(),
			Origin:  n.Origin.String(),
		})
	}

	edges := make([]JSONEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, JSONEdge{From: ids[e.From], To: ids[e.To]})
	}

	jsonReport := JSONGraphReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Nodes:       nodes,
		Edges:       edges,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
