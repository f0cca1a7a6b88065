package output

import (
	"io"
	"os"

	"github.com/masmgr/gitlineage/internal/lineage"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// shortIDs maps every node hash to its abbreviated form.
func shortIDs(g *lineage.Graph, length int) map[string]string {
	ids := make(map[string]string, g.NodeCount())
	for _, n := range g.Nodes() {
		ids[n.ID()] = n.Commit.ShortSHA(length)
	}
	return ids
}

func truncateMessage(msg string, maxLen int) string {
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen-3] + "..."
}
