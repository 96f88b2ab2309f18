package httpserver_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/sia816/my-3d-portfolio/internal/nav"
	"github.com/sia816/my-3d-portfolio/internal/testutil"
	"github.com/sia816/my-3d-portfolio/internal/viewer"
)

func get(t *testing.T, url string, header ...string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

func TestHomeRendersEverySection(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, ts.URL+"/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	require.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "谭思懿 – Interactive Intro • Portfolio", doc.Find("title").Text())
	for _, l := range nav.Links() {
		require.Equalf(t, 1, doc.Find("section#"+l.ID).Length(), "section %s", l.ID)
	}
	require.Equal(t, 4, doc.Find("[data-card]").Length())
	require.Equal(t, 3, doc.Find("[data-project]").Length())
	require.Contains(t, doc.Find("footer").Text(), "© 2025 Tan Siyi")
}

func TestContactNavEntryTargetsContactSection(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	_, body := get(t, ts.URL+"/")
	doc := testutil.ParseHTML(t, body)

	entry := doc.Find(`nav a[data-nav="contact"]`)
	require.Equal(t, 1, entry.Length())
	require.Equal(t, "Contact", entry.Text())
	target, _ := entry.Attr("data-scroll-target")
	href, _ := entry.Attr("href")
	require.Equal(t, "contact", target)
	require.Equal(t, "#contact", href)

	section := doc.Find("#" + target)
	require.Equal(t, 1, section.Length())
	require.Equal(t, "section", goquery.NodeName(section))
	require.Equal(t, 1, doc.Find(`script[src="/static/js/scroll.js"]`).Length())
}

func TestHomeRendersWhenViewerScriptUnreachable(t *testing.T) {
	t.Parallel()

	cfg := viewer.Default()
	cfg.ScriptURL = "https://unreachable.invalid/model-viewer.min.js"
	ts := testutil.NewServer(t, testutil.WithViewer(cfg))

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)

	script := doc.Find("script[data-viewer-script]")
	src, _ := script.Attr("src")
	typ, _ := script.Attr("type")
	_, async := script.Attr("async")
	require.Equal(t, cfg.ScriptURL, src)
	require.Equal(t, "module", typ)
	require.True(t, async)

	require.Equal(t, len(nav.Links()), doc.Find("nav a[data-scroll-target]").Length())
	require.Equal(t, 4, doc.Find("[data-card]").Length())
	require.Equal(t, 3, doc.Find("[data-contact-link]").Length())

	style, _ := doc.Find("[data-viewer-box]").Attr("style")
	require.Contains(t, style, "width:100%")
	require.Contains(t, style, "height:460px")
}

func TestStaticAssetsAreCached(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, ts.URL+"/static/js/scroll.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "scrollIntoView")
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	resp, _ = get(t, ts.URL+"/static/js/scroll.js", "If-None-Match", etag)
	require.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/static/css/site.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestModelsAndResume(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portrait.glb"), testutil.MinimalGLB(), 0o644))
	resume := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4\n"), 0o644))

	ts := testutil.NewServer(t, testutil.WithModelsDir(dir), testutil.WithResumeFile(resume))

	resp, body := get(t, ts.URL+"/models/portrait.glb")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "model/gltf-binary", resp.Header.Get("Content-Type"))
	require.Equal(t, testutil.MinimalGLB(), body)

	resp, _ = get(t, ts.URL+"/models/missing.glb")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = get(t, ts.URL+"/resume.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.Equal(t, "%PDF-1.4\n", string(body))
}

func TestResumeMissingIsNotFound(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithResumeFile(filepath.Join(t.TempDir(), "resume.pdf")))
	resp, _ := get(t, ts.URL+"/resume.pdf")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCanonicalFromBaseURL(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithBaseURL("https://sia.example.com"))
	_, body := get(t, ts.URL+"/")
	doc := testutil.ParseHTML(t, body)

	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, "https://sia.example.com/", href)
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestResponsesCarryRequestID(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, _ := get(t, ts.URL+"/healthz")
	require.Len(t, resp.Header.Get("X-Request-Id"), 26)

	resp, _ = get(t, ts.URL+"/healthz", "X-Request-Id", "lb-42")
	require.Equal(t, "lb-42", resp.Header.Get("X-Request-Id"))
}
