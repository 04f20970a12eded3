package goarg

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry holds declared options in registration order. Lookups resolve to the first option
// registered under a name; later duplicates are kept for help output but cannot be matched.
type Registry struct {
	options []*Option
	long    *orderedmap.OrderedMap[string, *Option]
	short   *orderedmap.OrderedMap[rune, *Option]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		long:  orderedmap.New[string, *Option](),
		short: orderedmap.New[rune, *Option](),
	}
}

// Add appends opt and reports whether its long or short name was already registered
func (r *Registry) Add(opt *Option) (duplicate bool) {
	r.options = append(r.options, opt)

	if _, found := r.long.Get(opt.Long); found {
		duplicate = true
	} else {
		r.long.Set(opt.Long, opt)
	}

	if opt.Short != 0 {
		if _, found := r.short.Get(opt.Short); found {
			duplicate = true
		} else {
			r.short.Set(opt.Short, opt)
		}
	}

	return duplicate
}

// Find returns the first option registered under long
func (r *Registry) Find(long string) (*Option, bool) {
	return r.long.Get(long)
}

// FindShort returns the first option registered with the short name s
func (r *Registry) FindShort(s rune) (*Option, bool) {
	if s == 0 {
		return nil, false
	}
	return r.short.Get(s)
}

// MatchLong resolves the body of a --long token. An exact name match wins and yields empty value text.
// Otherwise the longest registered name which prefixes body is chosen and the remainder of body is
// returned as the value text; toggles never match this way. When allowAssign is set a single '='
// separating name and value is dropped.
func (r *Registry) MatchLong(body string, allowAssign bool) (*Option, string, bool) {
	if opt, found := r.long.Get(body); found {
		return opt, "", true
	}

	var best *Option
	for pair := r.long.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value
		if !opt.TakesValue() || !strings.HasPrefix(body, pair.Key) {
			continue
		}
		if best == nil || len(pair.Key) > len(best.Long) {
			best = opt
		}
	}
	if best == nil {
		return nil, "", false
	}

	value := body[len(best.Long):]
	if allowAssign {
		value = strings.TrimPrefix(value, "=")
	}

	return best, value, true
}

// All returns every registered option in registration order, duplicates included
func (r *Registry) All() []*Option {
	return r.options
}

// Len returns the number of registered options, duplicates included
func (r *Registry) Len() int {
	return len(r.options)
}

// Reset clears parsed values and forgets every option
func (r *Registry) Reset() {
	for _, opt := range r.options {
		opt.clear()
	}
	r.options = nil
	r.long = orderedmap.New[string, *Option]()
	r.short = orderedmap.New[rune, *Option]()
}
