// internal/api/types/response.go
package types

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse carries a single store-assigned or echoed identifier.
type IDResponse struct {
	ID string `json:"_id"`
}

// ListResponse wraps a homogeneous result list.
// T represents the type of data contained in the 'Data' slice.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}
