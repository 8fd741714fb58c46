package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/locmt"
	"github.com/fwojciec/locmt/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const steamSearchHTML = `<!DOCTYPE html>
<html>
<body>
<div id="search_resultsRows">
	<a href="https://store.steampowered.com/app/1/The_Great_Gatsby/" class="search_result_row">
		<div class="search_name"><span class="title">The Great Gatsby</span></div>
	</a>
	<a href="/app/2/Gatsby_Remastered/" class="search_result_row">
		<div class="search_name"><span class="title">  Gatsby Remastered </span></div>
	</a>
	<div class="search_result_row_placeholder"><span class="title">No link</span></div>
	<a href="https://store.steampowered.com/app/3/" class="search_result_row"></a>
	<a href="https://store.steampowered.com/app/4/Gatsby_Tales/" class="search_result_row">
		<span class="title">Gatsby Tales</span>
	</a>
</div>
</body>
</html>`

func TestSteamExtractor_ExtractSearchResults(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and link preserving order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		results, err := e.ExtractSearchResults(steamSearchHTML, "https://store.steampowered.com/search/?term=gatsby")

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, locmt.SearchResult{
			Title: "The Great Gatsby",
			URL:   "https://store.steampowered.com/app/1/The_Great_Gatsby/",
		}, results[0])
		assert.Equal(t, locmt.SearchResult{
			Title: "Gatsby Remastered",
			URL:   "https://store.steampowered.com/app/2/Gatsby_Remastered/",
		}, results[1])
		assert.Equal(t, "Gatsby Tales", results[2].Title)
	})

	t.Run("returns empty slice for empty container", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		results, err := e.ExtractSearchResults(`<div id="search_resultsRows"></div>`, "https://store.steampowered.com/")

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("returns EEXTRACT when container is missing", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		_, err := e.ExtractSearchResults(`<html><body><p>Maintenance</p></body></html>`, "https://store.steampowered.com/")

		require.Error(t, err)
		assert.Equal(t, locmt.EEXTRACT, locmt.ErrorCode(err))
	})

	t.Run("returns EINVALID for bad base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		_, err := e.ExtractSearchResults(steamSearchHTML, "://bad")

		require.Error(t, err)
		assert.Equal(t, locmt.EINVALID, locmt.ErrorCode(err))
	})
}

const steamDetailHTML = `<!DOCTYPE html>
<html>
<body>
<div id="game_area_description" class="game_area_description">
	<h2>About This Game</h2>
	In the summer of 1922, Nick Carraway
	moves to West Egg.<br><br><br>
	<strong>Features</strong>
	<ul class="bb_ul">
		<li>Explore Long Island</li>
		<li>Attend lavish parties</li>
	</ul>
	<script>console.log("tracking")</script>
</div>
</body>
</html>`

func TestSteamExtractor_ExtractDescription(t *testing.T) {
	t.Parallel()

	t.Run("renders text with collapsed newlines", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		desc, err := e.ExtractDescription(steamDetailHTML)

		require.NoError(t, err)
		assert.Equal(t, "About This Game\nIn the summer of 1922, Nick Carraway moves to West Egg.\nFeatures\nExplore Long Island\nAttend lavish parties", desc)
		assert.NotContains(t, desc, "\n\n")
		assert.NotContains(t, desc, "tracking")
	})

	t.Run("returns EEXTRACT when container is missing", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSteamExtractor()

		_, err := e.ExtractDescription(`<html><body><div id="agegate"></div></body></html>`)

		require.Error(t, err)
		assert.Equal(t, locmt.EEXTRACT, locmt.ErrorCode(err))
	})
}

func TestSteamExtractor_ExtractDescriptionHTML(t *testing.T) {
	t.Parallel()

	e := goquery.NewSteamExtractor()

	inner, err := e.ExtractDescriptionHTML(steamDetailHTML)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(inner), "<h2>About This Game</h2>"))
	assert.Contains(t, inner, "<li>Explore Long Island</li>")
}
