// Package fasthttp adapts restcore's abstract HttpRequest/HttpResponse
// collaborators onto valyala/fasthttp, for deployments that want
// fasthttp's allocation profile instead of net/http's.
package fasthttp

import (
	"github.com/rohanthewiz/restcore"
	"github.com/valyala/fasthttp"
)

type request struct {
	ctx *fasthttp.RequestCtx
}

func (req *request) Method() string { return string(req.ctx.Method()) }
func (req *request) Path() string   { return string(req.ctx.Path()) }
func (req *request) Header(name string) string {
	return string(req.ctx.Request.Header.Peek(name))
}
func (req *request) Body() ([]byte, error) {
	return req.ctx.PostBody(), nil
}

type response struct {
	ctx *fasthttp.RequestCtx
}

func (resp *response) SetHeader(name, value string) {
	resp.ctx.Response.Header.Add(name, value)
}

func (resp *response) SetStatus(code int) {
	resp.ctx.SetStatusCode(code)
}

func (resp *response) Write(body []byte) error {
	_, err := resp.ctx.Write(body)
	return err
}

// Handler adapts a *restcore.Dispatcher into a fasthttp.RequestHandler.
type Handler struct {
	Dispatcher *restcore.Dispatcher
}

// New returns a fasthttp-backed Handler for dispatcher.
func New(dispatcher *restcore.Dispatcher) *Handler {
	return &Handler{Dispatcher: dispatcher}
}

// Serve is the fasthttp.RequestHandler entry point. Pass it to
// fasthttp.ListenAndServe or fasthttp.Serve.
func (h *Handler) Serve(ctx *fasthttp.RequestCtx) {
	req := &request{ctx: ctx}
	resp := h.Dispatcher.Dispatch(ctx, req)

	out := &response{ctx: ctx}
	for _, header := range resp.Headers() {
		for _, v := range header.Values {
			out.SetHeader(header.Name, string(v))
		}
	}
	out.SetStatus(resp.Status)
	_ = out.Write(resp.Body)
}
