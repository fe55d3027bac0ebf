package consts

// MIMEJSON is the only content type the core materializes responses
// with; content negotiation beyond JSON is out of scope.
const MIMEJSON = "application/json"
