package contentful

import (
	"net/url"
	"sort"
	"strconv"
)

// MaxInclude is the deepest link resolution the API supports.
const MaxInclude = 10

// Query selects entries of one content type.
type Query struct {
	ContentType string
	Fields      map[string]string // exact-match filters, sent as fields.<name>=<value>
	Include     int               // link resolution depth, clamped to 0..MaxInclude
	Limit       int               // 0 leaves the server default
	Skip        int
	Order       string
	Locale      string
}

func (q Query) include() int {
	switch {
	case q.Include < 0:
		return 0
	case q.Include > MaxInclude:
		return MaxInclude
	}
	return q.Include
}

// Values encodes the query as API query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.ContentType != "" {
		v.Set("content_type", q.ContentType)
	}
	names := make([]string, 0, len(q.Fields))
	for name := range q.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v.Set("fields."+name, q.Fields[name])
	}
	v.Set("include", strconv.Itoa(q.include()))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Locale != "" {
		v.Set("locale", q.Locale)
	}
	return v
}
