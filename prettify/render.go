package prettify

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fqdbg/fixprint/fix"
)

const elisionMarker = "// elided some likely irrelevant bindings"

// writeConstraint assembles one constraint's document: header, both sides in
// fixpoint notation, id/tag, the opaque metadata, then the environment
// listing with a single elision marker no matter how many bindings were
// pruned away.
func writeConstraint(sb *strings.Builder, c fix.SubC, lhs, rhs fix.SortedReft, lines []EnvLine) {
	sb.WriteString("constraint:\n")
	sb.WriteString("  lhs " + lhs.String() + "\n")
	sb.WriteString("  rhs " + rhs.String() + "\n")

	idText := "_"
	if c.ID != nil {
		idText = fmt.Sprint(*c.ID)
		sb.WriteString("  id " + idText + " tag " + c.Tag.String() + "\n")
	} else {
		sb.WriteString("  tag " + c.Tag.String() + "\n")
	}
	sb.WriteString("  // META constraint " + idText + " : " + metaString(c.Info) + "\n")

	sb.WriteString("  environment:\n")
	for _, line := range lines {
		name := "_"
		if line.Named {
			name = line.Key.String()
		}
		sb.WriteString("  " + name + " :\n")
		sb.WriteString("    " + line.SR.String() + "\n\n")
	}
	sb.WriteString("  " + elisionMarker + "\n")
}

func metaString(info any) string {
	if info == nil {
		return "<none>"
	}
	// opaque solver metadata, dumped on one line
	return strings.TrimSpace(spew.Sprintf("%v", info))
}
