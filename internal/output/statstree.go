package output

import (
	"fmt"
	"io"

	"github.com/promptpack/promptpack/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	tokenCountFormat = "%s%s (%d tokens)\n"
)

// WriteStatsTree renders the token tree to the provided writer. Directories
// show their rolled-up totals, files their own counts; children appear in
// the order the tree holds them.
func WriteStatsTree(writer io.Writer, node *types.StatsNode) {
	if node == nil {
		return
	}
	renderStatsNode(writer, node, "", true, true)
}

func renderStatsNode(writer io.Writer, node *types.StatsNode, prefix string, isRoot bool, isLast bool) {
	if node == nil {
		return
	}
	linePrefix, childPrefix := statsNodeLinePrefix(prefix, isRoot, isLast)
	if node.IsDir {
		fmt.Fprintf(writer, tokenCountFormat, linePrefix, node.Name, node.TotalTokens)
		for childIndex, child := range node.Children {
			renderStatsNode(writer, child, childPrefix, false, childIndex == len(node.Children)-1)
		}
		return
	}
	fmt.Fprintf(writer, tokenCountFormat, linePrefix, node.Name, node.Tokens)
}

func statsNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}

// FormatSummaryLine formats an OutputSummary into the summary line printed
// above the stats tree.
func FormatSummaryLine(summary *types.OutputSummary) string {
	if summary == nil {
		summary = &types.OutputSummary{}
	}
	label := "files"
	if summary.TotalFiles == 1 {
		label = "file"
	}
	tokenSuffix := ""
	if summary.TotalTokens > 0 {
		tokenSuffix = fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.TotalFiles, label, summary.TotalSize, tokenSuffix, modelSuffix)
}
