package main

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mandalnilabja/chatproxy/internal/relay"
	"github.com/mandalnilabja/chatproxy/internal/requestid"
)

// function adapts API Gateway proxy events to the relay.
type function struct {
	relay *relay.Handler
}

func newFunction(r *relay.Handler) *function {
	return &function{relay: r}
}

// Handle never returns an error: every outcome, failures included, is an
// HTTP response for the caller.
func (f *function) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = requestid.New()
	}

	req := relay.Request{
		Method:    event.HTTPMethod,
		Body:      decodeBody(event),
		RequestID: requestID,
	}

	resp := f.relay.Handle(ctx, req)

	headers := resp.Headers
	headers[requestid.Header] = requestID

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}, nil
}

// decodeBody returns the raw body bytes. A body flagged as base64 that does
// not decode is passed on undecoded, where it fails JSON parsing.
func decodeBody(event events.APIGatewayProxyRequest) []byte {
	if !event.IsBase64Encoded || event.Body == "" {
		return []byte(event.Body)
	}
	decoded, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		return []byte(event.Body)
	}
	return decoded
}
