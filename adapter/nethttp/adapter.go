// Package nethttp adapts restcore's abstract HttpRequest/HttpResponse
// collaborators onto the standard library's net/http, so a Dispatcher
// can be embedded in a conventional http.Server. This replaces the
// raw-socket transport layer that is out of scope for the core.
package nethttp

import (
	"io"
	"net/http"

	"github.com/rohanthewiz/restcore"
)

type request struct {
	r *http.Request
}

func (req *request) Method() string { return req.r.Method }
func (req *request) Path() string   { return req.r.URL.Path }
func (req *request) Header(name string) string {
	return req.r.Header.Get(name)
}
func (req *request) Body() ([]byte, error) {
	defer req.r.Body.Close()
	return io.ReadAll(req.r.Body)
}

type response struct {
	w           http.ResponseWriter
	wroteStatus bool
}

func (resp *response) SetHeader(name, value string) {
	resp.w.Header().Add(name, value)
}

func (resp *response) SetStatus(code int) {
	if resp.wroteStatus {
		return
	}
	resp.w.WriteHeader(code)
	resp.wroteStatus = true
}

func (resp *response) Write(body []byte) error {
	if !resp.wroteStatus {
		resp.SetStatus(http.StatusOK)
	}
	_, err := resp.w.Write(body)
	return err
}

// Handler adapts a *restcore.Dispatcher into an http.Handler.
type Handler struct {
	Dispatcher *restcore.Dispatcher
}

// New returns a net/http Handler backed by dispatcher.
func New(dispatcher *restcore.Dispatcher) *Handler {
	return &Handler{Dispatcher: dispatcher}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &request{r: r}
	resp := h.Dispatcher.Dispatch(r.Context(), req)

	out := &response{w: w}
	for _, header := range resp.Headers() {
		for _, v := range header.Values {
			out.SetHeader(header.Name, string(v))
		}
	}
	out.SetStatus(resp.Status)
	_ = out.Write(resp.Body)
}
