// Package awsasync provides client construction and augmentation.
//
// New builds a standard AWS SDK S3 client and immediately applies
// Asyncify so that every operation is reachable both synchronously and
// as an async sibling.
package awsasync

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rafidka/awsasync/errors"
	"github.com/rafidka/awsasync/internal/s3api"
)

// Client wraps an S3 client with async method bindings.
// The underlying SDK client is safe for concurrent use, and so are the
// bindings: they are written once at augmentation time and only read
// afterwards.
type Client struct {
	// api is the underlying AWS SDK S3 client
	api s3api.S3API

	// rawClient holds the actual AWS S3 client when constructed via New
	rawClient *s3.Client

	// config holds the AWS configuration
	config aws.Config

	// mu protects the binding maps during (re-)augmentation
	mu sync.RWMutex

	// syncOps maps conventional method names to synchronous invokers
	syncOps map[string]invoker

	// asyncOps maps "<name>_async" to offloading invokers; nil until
	// Asyncify has run
	asyncOps map[string]asyncInvoker
}

// New creates a new S3 client with the provided options and augments
// it with async method bindings. It loads AWS credentials using the
// default credential chain and applies the specified configuration
// options.
//
// Example:
//
//	client, err := awsasync.New(
//	    awsasync.WithRegion("us-west-2"),
//	    awsasync.WithMaxRetries(3),
//	)
func New(opts ...Option) (*Client, error) {
	clientCfg := &Config{
		MaxRetries: 3,
		Timeout:    0,
	}

	for _, opt := range opts {
		opt(clientCfg)
	}

	// Start with default AWS configuration or use custom config
	var cfg aws.Config
	var err error

	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, errors.NewError("client initialization", err)
		}
	}

	// Apply region from options if specified, otherwise ensure a region is set
	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}

	if clientCfg.MaxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.MaxRetries
	}
	if clientCfg.RetryMode != "" {
		cfg.RetryMode = aws.RetryMode(clientCfg.RetryMode)
	}

	// Create S3 client with options
	var s3Opts []func(*s3.Options)

	if clientCfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	if clientCfg.Endpoint != "" {
		endpoint := clientCfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	httpClient := clientCfg.HTTPClient
	if httpClient == nil && clientCfg.Timeout > 0 {
		httpClient = &http.Client{
			Timeout: clientCfg.Timeout,
		}
	}
	if httpClient != nil {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	sdkClient := s3.NewFromConfig(cfg, s3Opts...)

	client := &Client{
		api:       sdkClient,
		rawClient: sdkClient,
		config:    cfg,
		syncOps:   syncBindings(sdkClient),
	}

	return Asyncify(client)
}

// NewFromAPI creates a Client from any S3API implementation without
// augmenting it. This is the entry point for tests with mocked clients
// and for callers that want to run Asyncify themselves.
func NewFromAPI(api s3api.S3API) *Client {
	return &Client{
		api:     api,
		config:  aws.Config{},
		syncOps: syncBindings(api),
	}
}

// Config returns the AWS configuration the client was built with.
func (c *Client) Config() aws.Config {
	return c.config
}

// Raw returns the underlying SDK client, or nil when the Client was
// built from a custom S3API implementation.
func (c *Client) Raw() *s3.Client {
	return c.rawClient
}

// Close releases any resources held by the client.
// Currently a no-op but included for future extensibility.
func (c *Client) Close() error {
	return nil
}
