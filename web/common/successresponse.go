package common

// SuccessResponse wraps every 2xx payload so clients always unwrap "data".
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}
