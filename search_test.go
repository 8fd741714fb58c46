package locmt_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/locmt"
	"github.com/stretchr/testify/assert"
)

func TestSearchChoices(t *testing.T) {
	t.Parallel()

	makeResults := func(n int) []locmt.SearchResult {
		results := make([]locmt.SearchResult, n)
		for i := range n {
			results[i] = locmt.SearchResult{
				Title: fmt.Sprintf("Game %d", i),
				URL:   fmt.Sprintf("https://store.example.com/app/%d", i),
			}
		}
		return results
	}

	for _, k := range []int{0, 1, 4, 5, 6, 50} {
		t.Run(fmt.Sprintf("%d results", k), func(t *testing.T) {
			t.Parallel()

			results := makeResults(k)

			choices := locmt.SearchChoices(results)

			assert.Len(t, choices, min(k, locmt.MaxSearchChoices))
			for i, c := range choices {
				assert.Equal(t, results[i], c)
			}
		})
	}

	t.Run("does not alias the input slice", func(t *testing.T) {
		t.Parallel()

		results := makeResults(3)
		choices := locmt.SearchChoices(results)

		choices[0].Title = "changed"

		assert.Equal(t, "Game 0", results[0].Title)
	})

	t.Run("nil input yields empty choices", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, locmt.SearchChoices(nil))
	})
}

func TestResponseFilter_Matches(t *testing.T) {
	t.Parallel()

	t.Run("requires URL substring", func(t *testing.T) {
		t.Parallel()

		f := locmt.ResponseFilter{URLContains: "translate"}

		assert.True(t, f.Matches("https://papago.naver.com/apis/n2mt/translate", nil))
		assert.False(t, f.Matches("https://papago.naver.com/apis/langs/dect", nil))
	})

	t.Run("applies body predicate", func(t *testing.T) {
		t.Parallel()

		f := locmt.ResponseFilter{
			URLContains: "translate",
			Match:       func(body []byte) bool { return string(body) == "ok" },
		}

		assert.True(t, f.Matches("/translate", []byte("ok")))
		assert.False(t, f.Matches("/translate", []byte("nope")))
	})
}
