package cachedregexp

import (
	"regexp"
	"sync"
)

var cache sync.Map

// MustCompile behaves like regexp.MustCompile, but reuses previously
// compiled expressions so hot parsing paths can inline their patterns.
func MustCompile(exp string) *regexp.Regexp {
	compiled, ok := cache.Load(exp)
	if !ok {
		compiled, _ = cache.LoadOrStore(exp, regexp.MustCompile(exp))
	}

	return compiled.(*regexp.Regexp)
}
