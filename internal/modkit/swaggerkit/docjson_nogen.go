//go:build !swag

// Package swaggerkit mounts the Swagger UI and the JSON spec behind it
package swaggerkit

import "net/http"

// skeleton is served when the binary was built without generated docs
const skeleton = `{"openapi":"3.0.3","info":{"title":"genailab API","version":"1.0.0"},"servers":[{"url":"/api/v1"}],"paths":{}}`

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(skeleton))
	}
}
