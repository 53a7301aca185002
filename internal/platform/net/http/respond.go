// Package http is the server side of the API transport: routing seam,
// return-style handlers and the JSON envelope writer
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"genailab/internal/platform/logger"
	pnet "genailab/internal/platform/net"
)

// Envelope is the body shape of every response
type Envelope = pnet.Envelope

// Response is what a return-style handler produces. A Body that is an error
// becomes a failure envelope with the status its code maps to
type Response struct {
	Status int
	Body   any
}

// OK answers 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created answers 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Error answers with the status mapped from err
func Error(err error) Response { return Response{Body: err} }

// ListBody is the data shape of collection responses
type ListBody[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// List answers 200 with items and their count; nil is written as []
func List[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	return OK(ListBody[T]{Items: items, Total: len(items)})
}

// Handle adapts a return-style handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).Write(w, r)
	}
}

// Write renders resp inside the envelope
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok {
		env := pnet.Failure(err, reqID)
		if env.StatusCode >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Msg("request failed")
		}
		JSON(w, env.StatusCode, env)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	JSON(w, status, pnet.Success(status, resp.Body, reqID))
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
