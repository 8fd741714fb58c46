package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/locmt"
	"github.com/fwojciec/locmt/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Session is expected
	var _ locmt.Session = &mock.Session{}
}

func TestSession_DelegatesToEmbeddedPage(t *testing.T) {
	t.Parallel()

	t.Run("delegates page operations to the embedded Page", func(t *testing.T) {
		t.Parallel()

		var navigated string
		s := &mock.Session{
			Page: mock.Page{
				NavigateFn: func(_ context.Context, url string, _ locmt.WaitPolicy) error {
					navigated = url
					return nil
				},
			},
		}

		err := s.Navigate(context.Background(), "https://example.com", locmt.WaitLoad)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", navigated)
	})

	t.Run("returns default ID without IDFn", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "mock-session", (&mock.Session{}).ID())
	})
}
