package ingest

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/social"
)

// ObjectGetter is the subset of the S3 client the source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the delimited format from an S3 object. Keys ending in
// ".sz" are snappy framed.
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Source creates a source over an existing client.
func NewS3Source(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// NewS3SourceFromConfig builds a client for cfg. Static credentials are used
// when configured, otherwise the default AWS credential chain.
func NewS3SourceFromConfig(ctx context.Context, cfg config.SourceConfig) (*S3Source, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3Source(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Key), nil
}

func loadAWSConfig(ctx context.Context, cfg config.SourceConfig) (aws.Config, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 2)
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
	}
	return awsCfg, nil
}

func (s *S3Source) Kind() string { return KindS3 }

// Load fetches and parses the object.
func (s *S3Source) Load(ctx context.Context) ([]social.Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	records, err := ParseCSV(decompress(s.key, out.Body))
	if err != nil {
		return nil, fmt.Errorf("parse s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return records, nil
}
