package cache

import (
	"strings"
	"time"
)

// Listing TTLs. Each listing cache is built with one of these and never
// changes it at runtime.
const (
	ProductsTTL       = 5 * time.Minute
	EventsTTL         = 5 * time.Minute
	CertificationsTTL = 5 * time.Minute
	GalleryTTL        = 10 * time.Minute
)

// Key builds a listing key from a collection name and field/value pairs,
// e.g. Key("products", "category", "shoes") == "products:category:shoes".
// Pairs with an empty value are skipped, so an unfiltered listing keys on the
// collection alone. Values are lowercased to match the case-insensitive
// collation of the backing tables.
func Key(collection string, pairs ...string) string {
	b := strings.Builder{}
	b.WriteString(collection)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		b.WriteByte(':')
		b.WriteString(pairs[i])
		b.WriteByte(':')
		b.WriteString(strings.ToLower(pairs[i+1]))
	}
	return b.String()
}

// Label names the listing a key belongs to without its filter values, e.g.
// Label("products:category:shoes") == "products_by_category". Only the
// collection and the first field are used, both of which come from code, so
// the label set stays fixed whatever clients send.
func Label(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 || parts[1] == "" {
		return parts[0]
	}
	return parts[0] + "_by_" + parts[1]
}
