package ports

import (
	"strconv"
	"strings"

	"github.com/aretw0/sortvis/pkg/domain"
)

// CacheKey renders the canonical key of a step list, e.g. "quick:3,1,2".
func CacheKey(alg domain.Algorithm, values []int) string {
	var b strings.Builder
	b.WriteString(string(alg))
	b.WriteByte(':')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
