package s3store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the slice of the S3 surface this tool consumes. Narrow on purpose
// so tests can substitute a mock.
type API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// ListPaginator pages through ListObjectsV2 results.
type ListPaginator interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// PaginatorFactory builds a paginator over the given listing input.
type PaginatorFactory func(api API, params *s3.ListObjectsV2Input) ListPaginator

type Client struct {
	api       API
	paginator PaginatorFactory
}

type Options struct {
	AccountID      string
	AccessKeyID    string
	SecretKey      string
	EndpointDomain string
}

// New builds a client bound to an S3-compatible endpoint of the form
// https://{account}.{domain}. The region token is fixed to "auto", which is
// what R2 and most S3-compatible providers expect.
func New(ctx context.Context, opt Options) (*Client, error) {
	if opt.AccountID == "" || opt.AccessKeyID == "" || opt.SecretKey == "" {
		return nil, fmt.Errorf("s3: account id, access key and secret key are required")
	}
	if opt.EndpointDomain == "" {
		return nil, fmt.Errorf("s3: endpoint domain is required")
	}

	creds := credentials.NewStaticCredentialsProvider(opt.AccessKeyID, opt.SecretKey, "")

	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.%s", opt.AccountID, opt.EndpointDomain)
	api := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return NewFromAPI(api), nil
}

// NewFromAPI wraps an existing API implementation. Used by tests and by
// callers that configure the SDK client themselves.
func NewFromAPI(api API) *Client {
	return &Client{
		api: api,
		paginator: func(api API, params *s3.ListObjectsV2Input) ListPaginator {
			return s3.NewListObjectsV2Paginator(api, params)
		},
	}
}
