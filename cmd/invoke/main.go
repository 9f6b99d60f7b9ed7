// Command invoke runs the handler locally with an event read from a JSON
// file argument, or from stdin when no argument is given:
//
//	go run ./cmd/invoke event.json
//	echo '{"foo":"bar"}' | go run ./cmd/invoke
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/manikanta5827/perplecity-clone/internal/config"
	"github.com/manikanta5827/perplecity-clone/internal/handler"
	"github.com/manikanta5827/perplecity-clone/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	event, err := readEvent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading event: %v\n", err)
		os.Exit(1)
	}

	h := handler.New(logger.New(cfg), nil)

	// Handle never returns a non-nil error.
	resp, _ := h.Handle(context.Background(), event)

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Printf("Response Body: %s\n", resp.Body)
}

func readEvent() (json.RawMessage, error) {
	if len(os.Args) > 1 {
		return os.ReadFile(os.Args[1])
	}
	return io.ReadAll(os.Stdin)
}
