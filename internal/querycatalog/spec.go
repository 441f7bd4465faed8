package querycatalog

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Filter is one equality condition. Field is a column name.
type Filter struct {
	Field string
	Value any
}

// QuerySpec is one query shape the service issues: equality filters on a
// collection plus a sort on another field. Each one needs a composite index
// whose leading columns are the filter fields followed by the sort field.
type QuerySpec struct {
	Name       string
	Collection string
	Filters    []Filter
	SortField  string
	Direction  Direction
}

// Listing queries. Values on filters that are request parameters are
// placeholders; callers bind the real value with With.
var (
	ProductsActive = QuerySpec{
		Name:       "products_active",
		Collection: "products",
		Filters:    []Filter{{Field: "is_active", Value: true}},
		SortField:  "created_at",
		Direction:  Desc,
	}
	ProductsByCategory = QuerySpec{
		Name:       "products_by_category",
		Collection: "products",
		Filters:    []Filter{{Field: "is_active", Value: true}, {Field: "category", Value: ""}},
		SortField:  "created_at",
		Direction:  Desc,
	}
	ProductsFeatured = QuerySpec{
		Name:       "products_featured",
		Collection: "products",
		Filters:    []Filter{{Field: "is_active", Value: true}, {Field: "featured", Value: true}},
		SortField:  "created_at",
		Direction:  Desc,
	}
	ProductsByBrand = QuerySpec{
		Name:       "products_by_brand",
		Collection: "products",
		Filters:    []Filter{{Field: "is_active", Value: true}, {Field: "brand_id", Value: ""}},
		SortField:  "created_at",
		Direction:  Desc,
	}
	EventsActive = QuerySpec{
		Name:       "events_active",
		Collection: "events",
		Filters:    []Filter{{Field: "is_active", Value: true}},
		SortField:  "created_at",
		Direction:  Desc,
	}
	CertificationsByStatus = QuerySpec{
		Name:       "certifications_by_status",
		Collection: "certifications",
		Filters:    []Filter{{Field: "status", Value: "approved"}},
		SortField:  "submitted_at",
		Direction:  Desc,
	}
	GalleryCompleted = QuerySpec{
		Name:       "gallery_completed",
		Collection: "medias",
		Filters:    []Filter{{Field: "status", Value: "completed"}},
		SortField:  "uploaded_at",
		Direction:  Desc,
	}
)

// Catalog returns every query spec in declaration order.
func Catalog() []QuerySpec {
	return []QuerySpec{
		ProductsActive,
		ProductsByCategory,
		ProductsFeatured,
		ProductsByBrand,
		EventsActive,
		CertificationsByStatus,
		GalleryCompleted,
	}
}

// With returns a copy of q with the value of field replaced.
func (q QuerySpec) With(field string, value any) QuerySpec {
	filters := make([]Filter, len(q.Filters))
	copy(filters, q.Filters)
	for i := range filters {
		if filters[i].Field == field {
			filters[i].Value = value
		}
	}
	q.Filters = filters
	return q
}

// Fields lists the equality fields in order.
func (q QuerySpec) Fields() []string {
	out := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		out = append(out, f.Field)
	}
	return out
}

// IndexColumns is the column list of the composite index backing q.
func (q QuerySpec) IndexColumns() []string {
	return append(q.Fields(), q.SortField)
}

func (q QuerySpec) IndexName() string {
	return "idx_" + q.Collection + "_" + strings.Join(q.IndexColumns(), "_")
}

// CreateIndexStatement is the DDL an operator runs to back q.
func (q QuerySpec) CreateIndexStatement() string {
	return fmt.Sprintf("CREATE INDEX %s ON %s (%s)", q.IndexName(), q.Collection, strings.Join(q.IndexColumns(), ", "))
}

// SQL renders q as a SELECT of columns with its filter values as arguments.
func (q QuerySpec) SQL(columns string) (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", columns, q.Collection)
	args := make([]any, 0, len(q.Filters))
	for i, f := range q.Filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(f.Field)
		b.WriteString(" = ?")
		args = append(args, f.Value)
	}
	fmt.Fprintf(&b, " ORDER BY %s %s", q.SortField, q.Direction)
	return b.String(), args
}

func (q QuerySpec) String() string {
	parts := make([]string, 0, len(q.Filters))
	for _, f := range q.Filters {
		parts = append(parts, fmt.Sprintf("%s == %v", f.Field, f.Value))
	}
	return fmt.Sprintf("%s [%s] order by %s %s", q.Collection, strings.Join(parts, ", "), q.SortField, strings.ToLower(string(q.Direction)))
}
