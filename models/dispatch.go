package models

// RequestType selects the prompt profile used for a dispatch request.
type RequestType string

const (
	RequestAnalyze  RequestType = "analyze"
	RequestQuestion RequestType = "question"
	RequestSuggest  RequestType = "suggest"
	RequestOCR      RequestType = "ocr"
)

// RequestTypes lists every supported type in a stable order.
var RequestTypes = []RequestType{RequestAnalyze, RequestQuestion, RequestSuggest, RequestOCR}

// DispatchRequest is the body accepted by the dispatcher. Description and
// Query are aliases, the first non-empty one wins.
type DispatchRequest struct {
	Type        RequestType `json:"type"`
	Description string      `json:"description,omitempty"`
	Query       string      `json:"query,omitempty"`
	Image       string      `json:"image,omitempty"` // data URL or remote URL, ocr only
}

// DispatchResponse is the normalized success envelope. Analysis mirrors
// Result for older clients.
type DispatchResponse struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
	Result   string `json:"result"`
	Raw      string `json:"raw,omitempty"` // debug mode only, original text of a rejected analysis
}

// DispatchFailure is the error envelope shared by every dispatcher failure.
type DispatchFailure struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Kind    ErrorKind `json:"kind"`
}

// ErrorKind tags failure envelopes so clients do not have to rely on the
// status code alone.
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "invalid_input"
	KindInsufficientInput  ErrorKind = "insufficient_input"
	KindUnknownRequestType ErrorKind = "unknown_request_type"
	KindUpstreamFailure    ErrorKind = "upstream_failure"
	KindRateLimited        ErrorKind = "rate_limited"
)
