package restcore

type mockRequest struct {
	method  string
	path    string
	headers map[string]string
	body    []byte
}

func newMockRequest(method, path string) *mockRequest {
	return &mockRequest{method: method, path: path, headers: map[string]string{}}
}

func (m *mockRequest) withBody(body []byte) *mockRequest {
	m.body = body
	return m
}

func (m *mockRequest) withHeader(name, value string) *mockRequest {
	m.headers[name] = value
	return m
}

func (m *mockRequest) Method() string { return m.method }
func (m *mockRequest) Path() string   { return m.path }
func (m *mockRequest) Header(name string) string {
	return m.headers[name]
}
func (m *mockRequest) Body() ([]byte, error) { return m.body, nil }
