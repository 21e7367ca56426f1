package route

import (
	"golang.org/x/exp/slices"
)

// Router is the navigation stack of one column. It is never empty.
type Router struct {
	routes []Route
}

func NewRouter(first Route, rest ...Route) *Router {
	return &Router{routes: append([]Route{first}, rest...)}
}

func (r *Router) RouteTo(route Route) {
	r.routes = append(r.routes, route)
}

// GoBack pops the top route unless it is the last one
func (r *Router) GoBack() (Route, bool) {
	if len(r.routes) <= 1 {
		return Route{}, false
	}
	top := r.routes[len(r.routes)-1]
	r.routes = r.routes[:len(r.routes)-1]
	return top, true
}

func (r *Router) Top() Route {
	return r.routes[len(r.routes)-1]
}

func (r *Router) Routes() []Route {
	return slices.Clone(r.routes)
}

func (r *Router) Len() int {
	return len(r.routes)
}
