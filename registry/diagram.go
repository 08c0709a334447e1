package registry

import (
	"fmt"
	"strings"

	"github.com/eiasy/wolf/applications"
)

// renderDiagram emits a Graphviz DOT digraph linking the application to its
// grant types and redirect URIs. The output is an opaque artifact to
// callers; only the format, not the layout, is stable.
func renderDiagram(app *applications.Application) string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %q {\n", app.ID)
	fmt.Fprintf(&b, "    rankdir=LR;\n")
	fmt.Fprintf(&b, "    %q [shape=box, label=%q];\n", app.ID, app.Name)

	for _, grant := range app.Grants {
		node := "grant:" + grant
		fmt.Fprintf(&b, "    %q [shape=ellipse, label=%q];\n", node, grant)
		fmt.Fprintf(&b, "    %q -> %q [label=\"grants\"];\n", app.ID, node)
	}

	for _, uri := range app.RedirectURIs {
		node := "redirect:" + uri
		fmt.Fprintf(&b, "    %q [shape=note, label=%q];\n", node, uri)
		fmt.Fprintf(&b, "    %q -> %q [label=\"redirects\"];\n", app.ID, node)
	}

	b.WriteString("}\n")
	return b.String()
}
