package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// SortClause is one ORDER BY term. Every listing in the API has a fixed,
// server-chosen ordering (display order first, newest row wins ties), so
// sorting is never taken from the request.
type SortClause struct {
	Field string
	Dir   string `validate:"omitempty,oneof=ASC DESC"`
}

type QueryParams struct {
	Limit int `json:"limit" validate:"omitempty,gte=0"`
	Sort  []SortClause
}

// SortBy appends a sort clause and returns the params for chaining.
func (q QueryParams) SortBy(field, dir string) QueryParams {
	q.Sort = append(q.Sort, SortClause{Field: field, Dir: dir})

	return q
}
