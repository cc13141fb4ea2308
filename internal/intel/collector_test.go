package intel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Big Bread Co</title>
  <meta name="description" content="Industrial bakery serving the whole bay area.">
</head>
<body>
  <main>
    <p>We bake at scale.</p>
  </main>
  <div class="services-list">
    <li>Wholesale bread delivery</li>
    <li>Catering for large events</li>
    <li>short</li>
  </div>
  <section class="features">
    <p>Same-day delivery across the region</p>
  </section>
</body>
</html>`

func TestCollector_GatherFromWebsite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	c := NewCollectorWithClient(srv.Client())
	intel := c.Gather(context.Background(), "Big Bread Co", srv.URL)

	assert.Equal(t, "website", intel.Source)
	assert.Equal(t, "Big Bread Co", intel.BusinessName)
	assert.Equal(t, "Industrial bakery serving the whole bay area.", intel.Description)
	assert.Contains(t, intel.Services, "Wholesale bread delivery")
	assert.NotContains(t, intel.Services, "short", "items under ten characters are skipped")
	assert.Contains(t, intel.KeyFeatures, "Same-day delivery across the region")
	assert.False(t, intel.Empty())
}

func TestCollector_GatherServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCollectorWithClient(srv.Client())
	intel := c.Gather(context.Background(), "Big Bread Co", srv.URL)

	assert.Equal(t, "none", intel.Source)
	assert.True(t, intel.Empty())
	assert.Equal(t, "Big Bread Co", intel.BusinessName)
}

func TestCollector_GatherNoDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><head></head><body><div>nothing here</div></body></html>"))
	}))
	defer srv.Close()

	c := NewCollectorWithClient(srv.Client())
	intel := c.Gather(context.Background(), "Big Bread Co", srv.URL)

	assert.Equal(t, "none", intel.Source)
}

func TestParsePage_FallbackToMainParagraphs(t *testing.T) {
	html := `<html><head><title>T</title></head><body><main><p>First paragraph about the business.</p><p>Second one.</p></main></body></html>`

	page, err := parsePage(html)
	require.NoError(t, err)

	assert.Equal(t, "First paragraph about the business. Second one.", page.Description)
}

func TestParsePage_FallbackToTitle(t *testing.T) {
	html := `<html><head><title>Acme Bakery</title></head><body></body></html>`

	page, err := parsePage(html)
	require.NoError(t, err)

	assert.Equal(t, "Acme Bakery", page.Description)
}

func TestMainContentText_TruncatesOnRuneBoundary(t *testing.T) {
	// One leading ASCII byte puts every following two-byte rune across an
	// odd offset, so a naive byte cut at the limit would split a rune.
	long := "a" + strings.Repeat("é", 300)
	html := "<html><body><main><p>" + long + "</p></main></body></html>"

	page, err := parsePage(html)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(page.Description), descriptionLimit)
	assert.True(t, utf8.ValidString(page.Description))
}

func TestCandidateURLs(t *testing.T) {
	assert.Equal(t,
		[]string{"https://www.bigbreadco.com", "https://bigbreadco.com"},
		candidateURLs("Big Bread Co"))
	assert.Empty(t, candidateURLs("!!!"))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", normalizeURL("example.com"))
	assert.Equal(t, "http://example.com", normalizeURL("http://example.com"))
}
