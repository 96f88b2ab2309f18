package nav

import (
	"errors"
	"strings"
	"testing"
)

func TestLinksOrderAndCopy(t *testing.T) {
	links := Links()
	want := []string{"about", "experience", "projects", "contact"}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(links))
	}
	for i, id := range want {
		if links[i].ID != id {
			t.Fatalf("link %d: expected %q, got %q", i, id, links[i].ID)
		}
	}
	links[0].ID = "mutated"
	if Links()[0].ID != "about" {
		t.Fatalf("Links must return a copy")
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("#contact")
	if !ok || l.Label != "Contact" {
		t.Fatalf("expected contact link, got %+v ok=%v", l, ok)
	}
	if _, ok := Lookup("pricing"); ok {
		t.Fatalf("unknown anchors must not resolve")
	}
	if _, ok := Lookup("  "); ok {
		t.Fatalf("blank id must not resolve")
	}
}

func TestBuildTargetsMatchHref(t *testing.T) {
	for _, it := range Build() {
		if it.Href != "#"+it.Target {
			t.Fatalf("href %q does not point at target %q", it.Href, it.Target)
		}
	}
	for _, blank := range []string{"", "  ", "#"} {
		if got := Href(blank); got != "" {
			t.Fatalf("expected no href for blank id %q, got %q", blank, got)
		}
	}
}

func TestVerifyAnchors(t *testing.T) {
	doc := `<html><body>
<section id="about"></section>
<section id="experience"></section>
<section id="projects"></section>
<section id="contact"></section>
</body></html>`
	if err := VerifyAnchors(strings.NewReader(doc), Links()); err != nil {
		t.Fatalf("expected all anchors present, got %v", err)
	}
}

func TestVerifyAnchorsReportsMissingAndDuplicated(t *testing.T) {
	doc := `<div id="about"></div><div id="about"></div><div id="projects"></div>`
	err := VerifyAnchors(strings.NewReader(doc), Links())
	var anchorErr *AnchorError
	if !errors.As(err, &anchorErr) {
		t.Fatalf("expected AnchorError, got %v", err)
	}
	if strings.Join(anchorErr.Missing, ",") != "contact,experience" {
		t.Fatalf("unexpected missing list: %v", anchorErr.Missing)
	}
	if strings.Join(anchorErr.Duplicated, ",") != "about" {
		t.Fatalf("unexpected duplicated list: %v", anchorErr.Duplicated)
	}
}
