package catalogue

import (
	"context"
	"encoding/json"
	"fmt"

	"joiefull/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Source implements Source for a catalogue document stored in AWS S3.
type s3Source struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates a new S3-based catalogue source.
func NewS3Source(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "s3-catalogue-source").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	// Create S3 client
	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Str("region", region).
		Msg("S3 catalogue source initialised")

	return &s3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

// Fetch reads and decodes the catalogue document from S3.
func (s *s3Source) Fetch(ctx context.Context) ([]model.CatalogueProduct, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get catalogue object from S3")
		return nil, fmt.Errorf("failed to get catalogue object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	var products []model.CatalogueProduct
	if err := json.NewDecoder(result.Body).Decode(&products); err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to decode catalogue object")
		return nil, fmt.Errorf("failed to decode catalogue object %s: %w", s.key, err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Msg("catalogue fetched from S3")

	return products, nil
}
