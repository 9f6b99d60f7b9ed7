package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		api, err := NewApi(ctx)
		if err != nil {
			return err
		}

		_, err = NewLambdaHandler(ctx, LambdaHandlerArgs{
			api: api,
		})
		if err != nil {
			return err
		}

		return nil
	})
}
