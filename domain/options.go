package domain

// WithFindFields sets the fields that should be returned by the query. A nil
// slice means every field.
func WithFindFields(f []string) FindOption {
	return func(fo *FindOptions) {
		fo.Fields = f
	}
}

// WithFindSkip sets the number of documents to skip in query results.
func WithFindSkip(s int64) FindOption {
	return func(fo *FindOptions) {
		fo.Skip = s
	}
}

// WithFindLimit sets the maximum number of documents to return. Zero means
// unbounded.
func WithFindLimit(l int64) FindOption {
	return func(fo *FindOptions) {
		fo.Limit = l
	}
}

// WithFindSort specifies the sort order for query results. The value is handed
// to the store unmodified.
func WithFindSort(s any) FindOption {
	return func(fo *FindOptions) {
		fo.Sort = s
	}
}

// FindOption configures query options through the functional options pattern.
type FindOption func(*FindOptions)

// FindOptions contains the pagination, projection and sort parameters of a
// query.
type FindOptions struct {
	// Fields lists the fields to return, or nil for all of them.
	Fields []string
	// Skip specifies the number of documents to skip.
	Skip int64
	// Limit specifies the maximum number of documents to return.
	Limit int64
	// Sort specifies the sort order for results.
	Sort any
}

// NewFindOptions returns the [FindOptions] obtained by applying opts to the
// defaults.
func NewFindOptions(opts ...FindOption) FindOptions {
	var fo FindOptions
	for _, opt := range opts {
		opt(&fo)
	}
	return fo
}
