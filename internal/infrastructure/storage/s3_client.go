package storage

import (
	"context"
	"os"

	"billing_saas/internal/infrastructure/database"
	"billing_saas/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates the S3 client for the durable document store.
//
// S3_ENDPOINT points the client at a local object store (minio, localstack);
// path-style addressing is forced when it is set, since virtual-host buckets
// do not resolve against local endpoints.
func ConnectS3() *s3.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		l := logger.WithComponent("s3")
		l.Fatal().Err(err).Msg("failed to create aws config")
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
