package restcore

import (
	"context"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/restcore/params"
)

func TestRoutesRendersIndentedSlotsPerPrefix(t *testing.T) {
	router := NewRouter()
	router.Get("/items", func(_ context.Context, _ *Request[params.DynamicParams]) (any, error) {
		return nil, nil
	})
	router.Post("/items", func(_ context.Context, _ *Request[params.DynamicParams]) (any, error) {
		return nil, nil
	})
	router.Get("/items/{id}", func(_ context.Context, _ *Request[params.DynamicParams]) (any, error) {
		return nil, nil
	})

	want := "/items\n" +
		"  GET /items\n" +
		"  POST /items\n" +
		"/items/\n" +
		"  GET /items/{id}\n"

	assert.Equal(t, router.Routes(), want)
}
