package site

import (
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
)

// Page renders the body of one route into the layout's content slot.
type Page func(ctx PageContext) g.Node

// Route maps a path pattern to a page. The catch-all route uses "*".
type Route struct {
	Name   string
	Path   string
	Title  string
	Status int
	Page   Page
}

// Routes is the static route table.
type Routes []Route

const catchAll = "*"

// DefaultRoutes returns the storefront's route table.
func DefaultRoutes() Routes {
	return Routes{
		{Name: "home", Path: "/", Title: "Home", Status: http.StatusOK, Page: HomePage},
		{Name: "about", Path: "/about", Title: "About", Status: http.StatusOK, Page: AboutPage},
		{Name: "contact", Path: "/contact", Title: "Contact", Status: http.StatusOK, Page: ContactPage},
		{Name: "signup", Path: "/signUp", Title: "Sign Up", Status: http.StatusOK, Page: SignUpPage},
		{Name: "gallery", Path: "/gallery", Title: "Buttons", Status: http.StatusOK, Page: GalleryPage},
		{Name: "error", Path: catchAll, Title: "Not Found", Status: http.StatusNotFound, Page: ErrorPage},
	}
}

// Match returns the route for path. Trailing slashes are ignored and
// matching is case-insensitive, so /signup reaches /signUp. Unknown paths
// get the catch-all route.
func (r Routes) Match(path string) Route {
	path = NormalizePath(path)
	var fallback Route
	for _, route := range r {
		if route.Path == catchAll {
			fallback = route
			continue
		}
		if strings.EqualFold(route.Path, path) {
			return route
		}
	}
	return fallback
}

// Lookup returns the route with the given name.
func (r Routes) Lookup(name string) (Route, bool) {
	for _, route := range r {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}

// NormalizePath trims trailing slashes and guarantees a leading one.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
