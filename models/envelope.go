package models

// Envelope wraps every successful Holidaze API response.
type Envelope[T any] struct {
	Data T        `json:"data"`
	Meta PageMeta `json:"meta"`
}

// PageMeta is the pagination block of list responses.
type PageMeta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// ErrorBody is the body of a non-2xx Holidaze API response.
type ErrorBody struct {
	Errors     []ErrorItem `json:"errors"`
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
}

type ErrorItem struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// FirstMessage returns the first error message, or "" when there is none.
func (b ErrorBody) FirstMessage() string {
	if len(b.Errors) == 0 {
		return ""
	}
	return b.Errors[0].Message
}
