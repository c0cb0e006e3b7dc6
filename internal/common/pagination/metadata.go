package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total  int64 `json:"total"`  // Total number of items across all pages
	Limit  int   `json:"limit"`  // Items per page
	Offset int   `json:"offset"` // Items skipped before this page
}

// NewMetadata builds response metadata for one page of results.
func NewMetadata(total int64, params Params) Metadata {
	return Metadata{
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
}
