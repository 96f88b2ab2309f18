package nav

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// AnchorError lists navigation links whose anchors are absent from, or not
// unique within, a rendered document.
type AnchorError struct {
	Missing    []string
	Duplicated []string
}

// Error implements the error interface.
func (e *AnchorError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing ["+strings.Join(e.Missing, ", ")+"]")
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicated ["+strings.Join(e.Duplicated, ", ")+"]")
	}
	return "nav: anchors " + strings.Join(parts, "; ")
}

// VerifyAnchors parses an HTML document and checks that every link targets
// exactly one element id.
func VerifyAnchors(r io.Reader, links []Link) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("nav: parse document: %w", err)
	}
	counts := map[string]int{}
	collectIDs(doc, counts)

	var anchorErr AnchorError
	for _, l := range links {
		switch counts[l.ID] {
		case 0:
			anchorErr.Missing = append(anchorErr.Missing, l.ID)
		case 1:
		default:
			anchorErr.Duplicated = append(anchorErr.Duplicated, l.ID)
		}
	}
	if len(anchorErr.Missing) == 0 && len(anchorErr.Duplicated) == 0 {
		return nil
	}
	sort.Strings(anchorErr.Missing)
	sort.Strings(anchorErr.Duplicated)
	return &anchorErr
}

func collectIDs(n *html.Node, counts map[string]int) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val != "" {
				counts[a.Val]++
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectIDs(c, counts)
	}
}
