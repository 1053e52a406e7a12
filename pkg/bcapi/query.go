package bcapi

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams expresses the OData query options list endpoints accept.
// The zero value means no options; ToValues renders only the options that
// were set.
type QueryParams struct {
	// Filter is an OData $filter expression.
	Filter string

	// Select limits the returned fields.
	Select []string

	// Expand includes related entities.
	Expand []string

	// OrderBy is an OData $orderby expression.
	OrderBy string

	// Top limits the number of results. Zero means no limit.
	Top int

	// Skip skips the first n results.
	Skip int
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithFilter sets the $filter expression.
func (q *QueryParams) WithFilter(filter string) *QueryParams {
	q.Filter = filter

	return q
}

// WithSelect adds fields to $select.
func (q *QueryParams) WithSelect(fields ...string) *QueryParams {
	q.Select = append(q.Select, fields...)

	return q
}

// WithExpand adds relations to $expand.
func (q *QueryParams) WithExpand(relations ...string) *QueryParams {
	q.Expand = append(q.Expand, relations...)

	return q
}

// WithOrderBy sets the $orderby expression.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithTop sets $top.
func (q *QueryParams) WithTop(top int) *QueryParams {
	q.Top = top

	return q
}

// WithSkip sets $skip.
func (q *QueryParams) WithSkip(skip int) *QueryParams {
	q.Skip = skip

	return q
}

// ToValues converts the params to URL values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Filter != "" {
		values.Set("$filter", q.Filter)
	}

	if len(q.Select) > 0 {
		values.Set("$select", strings.Join(q.Select, ","))
	}

	if len(q.Expand) > 0 {
		values.Set("$expand", strings.Join(q.Expand, ","))
	}

	if q.OrderBy != "" {
		values.Set("$orderby", q.OrderBy)
	}

	if q.Top > 0 {
		values.Set("$top", strconv.Itoa(q.Top))
	}

	if q.Skip > 0 {
		values.Set("$skip", strconv.Itoa(q.Skip))
	}

	return values
}

// EscapeFilterValue escapes a literal string for use inside a $filter
// expression: single quotes are doubled per OData string literal rules.
func EscapeFilterValue(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
