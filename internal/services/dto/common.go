package dto

// ListMeta is the pagination envelope attached to list responses.
type ListMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ListResponse wraps a page of items with its meta.
type ListResponse struct {
	Items interface{} `json:"items"`
	Meta  ListMeta    `json:"meta"`
}

func NewListResponse(items interface{}, total int64, limit, offset int) *ListResponse {
	return &ListResponse{
		Items: items,
		Meta:  ListMeta{Total: total, Limit: limit, Offset: offset},
	}
}
