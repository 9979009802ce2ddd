package common

type Pagination struct {
	Total int64 `json:"total"`
}

// SearchResponse carries a page of results plus the unpaged total, so the
// client can render paging controls without a second count query.
type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewSearchResponse(data interface{}, total int64) *SearchResponse {
	return &SearchResponse{
		Data:       data,
		Pagination: Pagination{Total: total},
	}
}
