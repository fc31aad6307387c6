// Package archive stores recorded GPS tracks in S3-compatible object storage
// and hands out short-lived download links for them.
package archive

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignExpiry is the lifetime of download links.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// TrackArchive is the port used by the trail service.
type TrackArchive interface {
	Store(ctx context.Context, ownerID, trailID, pointsJSON string) error
	PresignGet(ctx context.Context, ownerID, trailID string) (string, error)
}

// Options configures the S3 connection.
type Options struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

type S3Archive struct {
	opts   Options
	client *s3.Client
}

// NewS3Archive loads the AWS config and builds the S3 client once.
func NewS3Archive(ctx context.Context, opts Options) (*S3Archive, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			// MinIO and friends serve buckets under the path
			o.UsePathStyle = true
		}
	})
	return &S3Archive{opts: opts, client: client}, nil
}

// TrackKey returns the object key for an owner's hike track.
func TrackKey(ownerID, trailID string) string {
	return fmt.Sprintf("tracks/%s/%s.json", url.PathEscape(ownerID), url.PathEscape(trailID))
}

// Store uploads the track, replacing any previous version. Uploads are not
// ordered against each other: when two writers record the same trail at
// once the object keeps whichever upload finished last, which may not be
// the points of the record that won in the database.
func (a *S3Archive) Store(ctx context.Context, ownerID, trailID, pointsJSON string) error {
	bucket := a.opts.Bucket
	key := TrackKey(ownerID, trailID)

	_, err := putObject(a.client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        strings.NewReader(pointsJSON),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// PresignGet returns a download URL for the archived track.
func (a *S3Archive) PresignGet(ctx context.Context, ownerID, trailID string) (string, error) {
	bucket := a.opts.Bucket
	key := TrackKey(ownerID, trailID)

	// Presigned GET
	req, err := presignGetObject(newS3PresignClient(a.client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
