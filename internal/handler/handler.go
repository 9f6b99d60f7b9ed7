// Package handler implements the Lambda invocation handler. Every invocation
// answers with one of exactly two response shapes: a fixed 200 success body,
// or a fixed 500 failure body that never carries the underlying error detail.
package handler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

type responseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var (
	successBody = responseBody{Status: "success", Message: "handler triggered"}
	failureBody = responseBody{Status: "failed", Message: "Something went wrong"}
)

// Processor consumes the raw invocation event between logging and response
// construction. The default processor ignores the payload entirely; real
// event processing would attach here.
type Processor func(ctx context.Context, event json.RawMessage) error

type Handler struct {
	logger  zerolog.Logger
	process Processor
}

// New returns a handler using the given processor. A nil processor means the
// event is logged and otherwise ignored.
func New(logger zerolog.Logger, process Processor) *Handler {
	if process == nil {
		process = func(context.Context, json.RawMessage) error { return nil }
	}
	return &Handler{logger: logger, process: process}
}

// Handle is the Lambda entrypoint. It never returns a non-nil error: any
// failure inside the attempt, error or panic, is logged and mapped to the
// fixed 500 response, so the runtime never sees an invocation error.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (resp events.APIGatewayV2HTTPResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Interface("panic", r).Msg("recovered from panic while handling event")
			resp = response(500, failureBody)
			err = nil
		}
	}()

	h.logEvent(event)

	if perr := h.process(ctx, event); perr != nil {
		h.logger.Error().Err(perr).Msg("handling event failed")
		return response(500, failureBody), nil
	}

	return response(200, successBody), nil
}

func (h *Handler) logEvent(event json.RawMessage) {
	evt := h.logger.Info()
	if json.Valid(event) {
		evt = evt.RawJSON("event", event)
	} else {
		// Direct invokes can hand us an empty or non-JSON payload.
		evt = evt.Bytes("event", event)
	}
	evt.Msg("received event")
}

func response(statusCode int, body responseBody) events.APIGatewayV2HTTPResponse {
	// responseBody is two plain strings; marshaling cannot fail.
	b, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(b),
	}
}
