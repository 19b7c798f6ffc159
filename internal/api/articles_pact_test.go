package api

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Consumer contract for the article endpoints. Requires the pact FFI runtime,
// so it only runs when PACT_TEST is set.
func TestArticleAPI_ConsumerContract(t *testing.T) {
	if os.Getenv("PACT_TEST") == "" {
		t.Skip("set PACT_TEST=1 to run consumer contract tests")
	}

	mockProvider, err := consumer.NewV2Pact(consumer.MockHTTPProviderConfig{
		Consumer: "geekctl",
		Provider: "geek-content-api",
	})
	require.NoError(t, err)

	err = mockProvider.
		AddInteraction().
		Given("article 42 exists").
		UponReceiving("a request for article 42").
		WithRequest("GET", "/articles/42", func(b *consumer.V2RequestBuilder) {
			b.Header("Authorization", matchers.Like("Bearer tok123"))
		}).
		WillRespondWith(200, func(b *consumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.String("application/json"))
			b.JSONBody(matchers.Map{
				"message": matchers.Like("OK"),
				"data": matchers.Map{
					"title":      matchers.Like("hello"),
					"content":    matchers.Like("body"),
					"channel_id": matchers.Like(1),
					"cover": matchers.Map{
						"type":   matchers.Like(1),
						"images": matchers.EachLike("http://cdn/a.png", 1),
					},
				},
			})
		}).
		ExecuteTest(t, func(config consumer.MockServerConfig) error {
			client := New(Options{
				BaseURL: fmt.Sprintf("http://%s:%d", config.Host, config.Port),
				Tokens:  &fakeTokens{token: "tok123"},
			})

			art, err := client.GetArticle(context.Background(), "42")
			if err != nil {
				return err
			}
			assert.Equal(t, "hello", art.Title)
			return nil
		})
	require.NoError(t, err)
}
