package http

import "net/http"

// Handler is the plain handler func every route is registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against, kept free of chi types
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
