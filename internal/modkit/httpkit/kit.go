// Package httpkit is what feature modules use to register routes.
// Modules import it instead of the platform http package
package httpkit

import (
	"net/http"

	phttp "genailab/internal/platform/net/http"
)

// Router is the platform routing seam
type Router = phttp.Router

// Created answers 201 with data; return it from a handler to override the default 200
func Created(data any) phttp.Response { return phttp.Created(data) }

// List answers 200 with {items, total}
func List[T any](items []T) phttp.Response { return phttp.List(items) }

// Get registers a handler that takes no body
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBody(h))
}

// PostJSON registers a handler fed a validated T from the body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// PutJSON registers a handler fed a validated T from the body
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, phttp.JSONHandler(h))
}
