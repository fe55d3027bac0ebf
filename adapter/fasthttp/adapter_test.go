package fasthttp

import (
	"context"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/restcore"
	"github.com/rohanthewiz/restcore/params"
	"github.com/valyala/fasthttp"
)

func TestServeDispatchesToRouter(t *testing.T) {
	router := restcore.NewRouter()
	router.Get("/hello", func(_ context.Context, _ *restcore.Request[params.DynamicParams]) (any, error) {
		return "world", nil
	})

	h := New(restcore.NewDispatcher(router))

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/hello")
	ctx.Request.Header.SetMethod("GET")

	h.Serve(ctx)

	assert.Equal(t, ctx.Response.StatusCode(), 200)
	assert.Equal(t, string(ctx.Response.Body()), `"world"`)
}

func TestServeReturns404ForUnknownPath(t *testing.T) {
	router := restcore.NewRouter()
	h := New(restcore.NewDispatcher(router))

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/nope")
	ctx.Request.Header.SetMethod("GET")

	h.Serve(ctx)

	assert.Equal(t, ctx.Response.StatusCode(), 404)
}
