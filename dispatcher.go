package restcore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/restcore/consts"
	"go.uber.org/zap"
)

// recognizedMethods is exactly the set spec.md §6 lists. Anything
// outside it is rejected rather than coerced to GET; see SPEC_FULL.md's
// Open Question resolution.
var recognizedMethods = map[string]bool{
	consts.MethodHead:    true,
	consts.MethodGet:     true,
	consts.MethodPost:    true,
	consts.MethodPut:     true,
	consts.MethodPatch:   true,
	consts.MethodDelete:  true,
	consts.MethodOptions: true,
}

// Dispatcher is the request-time glue described in spec.md §4.6: given
// a request it performs the longest-prefix lookup, hands off to the
// matched Endpoint, and logs the outcome.
type Dispatcher struct {
	router *Router
}

// NewDispatcher builds a Dispatcher bound to router. Binding fills any
// option each endpoint left unset from the router's own config. Once
// built, the router's route tree is treated as read-only: there is no
// hot-reload facility, matching the mutation-window rule in spec.md §5.
func NewDispatcher(router *Router) *Dispatcher {
	router.routes.ForEach(func(endpoint **Endpoint) {
		(*endpoint).addConfig(router.config)
	})
	return &Dispatcher{router: router}
}

// Dispatch runs the full request pipeline: method normalization, tree
// lookup, Endpoint dispatch, and structured logging.
func (d *Dispatcher) Dispatch(ctx context.Context, req HttpRequest) *Response {
	start := time.Now()
	requestID := uuid.NewString()
	path := req.Path()
	method := req.Method()

	if !recognizedMethods[method] {
		resp := errorResponse(NotImplementedError(method))
		d.log(requestID, method, path, resp.Status, start)
		return resp
	}

	prefixLen, endpoint, ok := d.router.routes.Find([]byte(path))
	if !ok {
		resp := errorResponse(NotFoundError("no route matches " + path))
		d.log(requestID, method, path, resp.Status, start)
		return resp
	}

	resp := endpoint.handle(ctx, method, req, prefixLen)
	d.log(requestID, method, path, resp.Status, start)
	return resp
}

func (d *Dispatcher) log(requestID, method, path string, status int, start time.Time) {
	d.router.logger.Info("dispatched request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	)
}
