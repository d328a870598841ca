package source

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Veraticus/dex/internal/common"
)

// S3Config configures an S3 source. Endpoint and PathStyle allow S3
// compatible stores such as MinIO.
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	EntriesKey    string
	CategoriesKey string
	PathStyle     bool
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads catalog documents from objects in a single bucket.
type S3 struct {
	client objectGetter
	cfg    S3Config
}

// NewS3 creates an S3 source using the default AWS credential chain.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket required", common.ErrMissingConfig)
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.EntriesKey == "" {
		cfg.EntriesKey = EntriesDocumentName
	}
	if cfg.CategoriesKey == "" {
		cfg.CategoriesKey = CategoriesDocumentName
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3{client: client, cfg: cfg}, nil
}

// Name implements service.DocumentSource.
func (s *S3) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, s.cfg.EntriesKey)
}

// EntriesDocument implements service.DocumentSource.
func (s *S3) EntriesDocument(ctx context.Context) ([]byte, error) {
	return s.get(ctx, s.cfg.EntriesKey)
}

// CategoriesDocument implements service.DocumentSource.
func (s *S3) CategoriesDocument(ctx context.Context) ([]byte, error) {
	return s.get(ctx, s.cfg.CategoriesKey)
}

func (s *S3) get(ctx context.Context, key string) ([]byte, error) {
	uri := fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &common.NetworkError{Op: "GetObject", URL: uri, Err: err}
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			common.LogDebug("failed to close object body", common.Fields{"uri": uri, "error": closeErr})
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &common.NetworkError{Op: "GetObject", URL: uri, Err: err}
	}
	return data, nil
}
