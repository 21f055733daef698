package s3

import (
	"fmt"
	"strings"
	"time"

	"social-vault/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const referenceScheme = "s3://"

// Client turns stored s3:// media references into short-lived GET URLs.
type Client struct {
	s3Client *s3.S3
	bucket   string
	ttl      time.Duration
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
		ttl:      cfg.MediaURLTTL,
	}, nil
}

// ParseReference splits "s3://bucket/key" into its parts.
func ParseReference(ref string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(ref, referenceScheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(ref, referenceScheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// SignMediaURL presigns references that point into the configured bucket.
// Anything else (plain https URLs, foreign buckets) is returned unchanged.
func (c *Client) SignMediaURL(ref string) (string, error) {
	bucket, key, ok := ParseReference(ref)
	if !ok || bucket != c.bucket {
		return ref, nil
	}

	req, _ := c.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(c.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", ref, err)
	}
	return url, nil
}
