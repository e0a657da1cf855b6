// internal/cli/format.go
package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arc-language/nixq/pkg/nixsearch"
)

const (
	minNameWidth    = 15
	minVersionWidth = 10
	maxDescWidth    = 50
)

// renderPlain writes one attribute name per line, nothing else
func renderPlain(w io.Writer, res *nixsearch.Result) {
	for _, pkg := range res.Packages {
		if pkg.AttrName == "" {
			continue
		}
		fmt.Fprintln(w, pkg.AttrName)
	}
}

// renderTable writes the hits as an aligned name/version/description
// table. Column widths are computed from the current page only.
func renderTable(w io.Writer, res *nixsearch.Result, platform string) {
	if len(res.Packages) == 0 {
		fmt.Fprintln(w, "No packages found.")
		return
	}

	nameWidth := minNameWidth
	versionWidth := minVersionWidth
	for _, pkg := range res.Packages {
		if n := utf8.RuneCountInString(pkg.AttrName); n > nameWidth {
			nameWidth = n
		}
		if n := utf8.RuneCountInString(pkg.Version); n > versionWidth {
			versionWidth = n
		}
	}

	fmt.Fprintf(w, "\nFound %d packages:\n", res.Total)
	fmt.Fprintf(w, "%-*s | %-*s | Description\n", nameWidth, "Package Name", versionWidth, "Version")
	fmt.Fprintf(w, "%s-+-%s-+-%s\n",
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", versionWidth),
		strings.Repeat("-", maxDescWidth))

	for _, pkg := range res.Packages {
		desc := pkg.Description
		if desc == "" {
			desc = "No description"
		}
		if r := []rune(desc); len(r) > maxDescWidth {
			desc = string(r[:maxDescWidth-3]) + "..."
		}
		fmt.Fprintf(w, "%-*s | %-*s | %s\n", nameWidth, pkg.AttrName, versionWidth, pkg.Version, desc)
	}

	if platform != "" {
		fmt.Fprintf(w, "\nResults filtered for platform: %s\n", platform)
	}
}
