package steam_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/locmt"
	"github.com/fwojciec/locmt/goquery"
	"github.com/fwojciec/locmt/htmltomarkdown"
	"github.com/fwojciec/locmt/mock"
	"github.com/fwojciec/locmt/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchHTML = `<html><body>
<div id="search_resultsRows">
	<a href="https://store.steampowered.com/app/1/The_Great_Gatsby/"><span class="title">The Great Gatsby</span></a>
	<a href="https://store.steampowered.com/app/2/Gatsby_Remastered/"><span class="title">Gatsby Remastered</span></a>
</div>
</body></html>`

const detailHTML = `<html><body>
<div id="game_area_description">
	<h2>About This Game</h2>
	Jazz age drama.<br><br>
	<ul><li>Parties</li></ul>
</div>
</body></html>`

// fakePage serves fixed HTML per URL and records the calls made against it.
func fakePage(pages map[string]string, calls *[]string) *mock.Page {
	var current string
	return &mock.Page{
		NavigateFn: func(_ context.Context, url string, policy locmt.WaitPolicy) error {
			*calls = append(*calls, "navigate "+url+" "+policy.String())
			current = url
			return nil
		},
		WaitElementsFn: func(ctx context.Context, selectors ...string) error {
			_, ok := ctx.Deadline()
			if !ok {
				return locmt.Errorf(locmt.EINTERNAL, "wait without deadline")
			}
			for _, s := range selectors {
				*calls = append(*calls, "wait "+s)
			}
			return nil
		},
		HTMLFn: func(_ context.Context) (string, error) {
			*calls = append(*calls, "html")
			return pages[current], nil
		},
	}
}

func TestDescriber_SearchURL(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and escapes the title", func(t *testing.T) {
		t.Parallel()

		d := steam.NewDescriber(goquery.NewSteamExtractor())

		assert.Equal(t, "https://store.steampowered.com/search/?term=the+great+gatsby", d.SearchURL("The Great Gatsby"))
		assert.Equal(t, "https://store.steampowered.com/search/?term=a%26b", d.SearchURL("A&B"))
	})

	t.Run("honors base URL override", func(t *testing.T) {
		t.Parallel()

		d := steam.NewDescriber(goquery.NewSteamExtractor(), steam.WithBaseURL("http://127.0.0.1:8080/"))

		assert.Equal(t, "http://127.0.0.1:8080/search/?term=gatsby", d.SearchURL("Gatsby"))
	})
}

func TestDescriber_Search(t *testing.T) {
	t.Parallel()

	t.Run("loads search page and returns results in order", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())
		page := fakePage(map[string]string{
			"https://store.steampowered.com/search/?term=gatsby": searchHTML,
		}, &calls)

		results, err := d.Search(context.Background(), page, "Gatsby")

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "The Great Gatsby", results[0].Title)
		assert.Equal(t, "https://store.steampowered.com/app/2/Gatsby_Remastered/", results[1].URL)
		assert.Equal(t, []string{
			"navigate https://store.steampowered.com/search/?term=gatsby load",
			"wait " + steam.ResultsSelector,
			"html",
		}, calls)
	})

	t.Run("returns ENOTFOUND for empty results", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())
		page := fakePage(map[string]string{
			"https://store.steampowered.com/search/?term=zzqx": `<div id="search_resultsRows"></div>`,
		}, &calls)

		_, err := d.Search(context.Background(), page, "zzqx")

		require.Error(t, err)
		assert.Equal(t, locmt.ENOTFOUND, locmt.ErrorCode(err))
	})

	t.Run("returns EINVALID for blank title without navigating", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())

		_, err := d.Search(context.Background(), fakePage(nil, &calls), "   ")

		require.Error(t, err)
		assert.Equal(t, locmt.EINVALID, locmt.ErrorCode(err))
		assert.Empty(t, calls)
	})

	t.Run("propagates navigation failure", func(t *testing.T) {
		t.Parallel()

		d := steam.NewDescriber(goquery.NewSteamExtractor())
		page := &mock.Page{
			NavigateFn: func(context.Context, string, locmt.WaitPolicy) error {
				return locmt.Errorf(locmt.ENAVIGATION, "net::ERR_NAME_NOT_RESOLVED")
			},
		}

		_, err := d.Search(context.Background(), page, "gatsby")

		require.Error(t, err)
		assert.Equal(t, locmt.ENAVIGATION, locmt.ErrorCode(err))
	})

	t.Run("bounds the readiness wait", func(t *testing.T) {
		t.Parallel()

		d := steam.NewDescriber(goquery.NewSteamExtractor(), steam.WithReadinessTimeout(10*time.Millisecond))
		page := &mock.Page{
			NavigateFn: func(context.Context, string, locmt.WaitPolicy) error { return nil },
			WaitElementsFn: func(ctx context.Context, _ ...string) error {
				<-ctx.Done()
				return locmt.Errorf(locmt.ETIMEOUT, "timed out waiting for %s", steam.ResultsSelector)
			},
		}

		_, err := d.Search(context.Background(), page, "gatsby")

		require.Error(t, err)
		assert.Equal(t, locmt.ETIMEOUT, locmt.ErrorCode(err))
	})
}

func TestDescriber_Describe(t *testing.T) {
	t.Parallel()

	result := locmt.SearchResult{
		Title: "The Great Gatsby",
		URL:   "https://store.steampowered.com/app/1/The_Great_Gatsby/",
	}

	t.Run("returns normalized description text", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())
		page := fakePage(map[string]string{result.URL: detailHTML}, &calls)

		text, err := d.Describe(context.Background(), page, result)

		require.NoError(t, err)
		assert.Equal(t, "About This Game\nJazz age drama.\nParties", text)
		assert.NotContains(t, text, "\n\n")
		assert.Equal(t, []string{
			"navigate " + result.URL + " load",
			"wait " + steam.DescriptionSelector,
			"html",
		}, calls)
	})

	t.Run("renders through converter when configured", func(t *testing.T) {
		t.Parallel()

		var calls []string
		var converted string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				converted = html
				return "## About This Game\n\n\nJazz age drama.\n", nil
			},
		}
		d := steam.NewDescriber(goquery.NewSteamExtractor(), steam.WithConverter(conv))
		page := fakePage(map[string]string{result.URL: detailHTML}, &calls)

		text, err := d.Describe(context.Background(), page, result)

		require.NoError(t, err)
		assert.Contains(t, converted, "<h2>About This Game</h2>")
		assert.Equal(t, "## About This Game\n\nJazz age drama.", text)
	})

	t.Run("keeps paragraph breaks in markdown", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor(), steam.WithConverter(htmltomarkdown.NewConverter()))
		page := fakePage(map[string]string{result.URL: `<html><body><div id="game_area_description">
<p>First paragraph.</p><p>Second paragraph.</p>
<ul><li>one</li><li>two</li></ul>
</div></body></html>`}, &calls)

		text, err := d.Describe(context.Background(), page, result)

		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.\n\n- one\n- two", text)
	})

	t.Run("returns EEXTRACT when description is missing", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())
		page := fakePage(map[string]string{result.URL: `<html><body>Age check</body></html>`}, &calls)

		_, err := d.Describe(context.Background(), page, result)

		require.Error(t, err)
		assert.Equal(t, locmt.EEXTRACT, locmt.ErrorCode(err))
	})

	t.Run("returns EINVALID for result without link", func(t *testing.T) {
		t.Parallel()

		var calls []string
		d := steam.NewDescriber(goquery.NewSteamExtractor())

		_, err := d.Describe(context.Background(), fakePage(nil, &calls), locmt.SearchResult{Title: "x"})

		require.Error(t, err)
		assert.Equal(t, locmt.EINVALID, locmt.ErrorCode(err))
		assert.Empty(t, calls)
	})
}
