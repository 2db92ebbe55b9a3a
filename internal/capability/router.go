package capability

import "strings"

// NavigateFunc is invoked when an explicit capability selection moves the
// client to that capability's default route.
type NavigateFunc func(route string)

// Router tracks the active capability and keeps it in sync with the URL.
// It is a synchronous state machine over the static Registry; it never
// blocks, errors, or touches shared state.
type Router struct {
	current  ID
	navigate NavigateFunc
}

// NewRouter returns a router starting at HRMS, the product's landing
// capability. navigate may be nil when no navigation side effect is wanted.
func NewRouter(navigate NavigateFunc) *Router {
	return &Router{current: HRMS, navigate: navigate}
}

// Current returns the active capability id.
func (r *Router) Current() ID {
	return r.current
}

// Active returns the active capability's full descriptor.
func (r *Router) Active() Capability {
	return Registry[r.current]
}

// Set activates a capability by explicit user selection and navigates to its
// default route. Unknown ids are ignored: no navigation, no state change.
func (r *Router) Set(id ID) {
	c, ok := Registry[id]
	if !ok {
		return
	}
	r.current = id
	if r.navigate != nil {
		r.navigate(c.DefaultRoute)
	}
}

// SyncFromPath aligns the active capability with a URL path using
// longest-prefix matching. A path that maps to no capability, or to the one
// already active, leaves the state untouched so sub-route changes within a
// capability cause no transition. Sync never navigates: the URL is the
// source of truth here.
func (r *Router) SyncFromPath(path string) {
	match, ok := resolvePath(path)
	if !ok || match == r.current {
		return
	}
	r.current = match
}

// resolvePath maps a URL path to a capability id by longest-prefix match
// over the fixed prefix list.
func resolvePath(path string) (ID, bool) {
	var (
		best    ID
		bestLen int
		found   bool
	)
	for _, rp := range routePrefixes {
		if strings.HasPrefix(path, rp.prefix) && len(rp.prefix) > bestLen {
			best = rp.id
			bestLen = len(rp.prefix)
			found = true
		}
	}
	return best, found
}
