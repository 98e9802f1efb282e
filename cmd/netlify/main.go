// Command netlify is the serverless entrypoint: a Lambda-runtime function
// handling API Gateway proxy events, as Netlify Functions deliver them.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mandalnilabja/chatproxy/internal/config"
	"github.com/mandalnilabja/chatproxy/internal/logging"
	"github.com/mandalnilabja/chatproxy/internal/provider/openai"
	"github.com/mandalnilabja/chatproxy/internal/relay"
)

func main() {
	// Resolved once per cold start and shared by every invocation.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, "json")

	upstream := openai.New(cfg.UpstreamURL, cfg.UpstreamTimeout)
	fn := newFunction(relay.New(cfg, upstream, logger))

	lambda.Start(fn.Handle)
}
