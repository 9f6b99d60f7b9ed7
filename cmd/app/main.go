package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

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

	log := logger.New(cfg)
	h := handler.New(log, nil)
	lambda.Start(h.Handle)
}
