// Package storage uploads profile pictures to an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) ObjectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newObjectSuffix = func() string { return uuid.NewString() }
)

// ObjectPutter is the part of the S3 client the store needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarStore writes avatars under {userID}/{random}.{ext} and hands out
// their public URLs.
type AvatarStore struct {
	client   ObjectPutter
	bucket   string
	endpoint string
}

// NewAvatarStore builds an S3 client with static credentials against the
// configured endpoint. Path-style addressing keeps MinIO-like backends happy.
func NewAvatarStore(ctx context.Context, cfg *config.Config) (*AvatarStore, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return NewAvatarStoreWithClient(client, cfg.S3Bucket, cfg.S3BaseEndpoint), nil
}

// NewAvatarStoreWithClient wires an existing client.
func NewAvatarStoreWithClient(client ObjectPutter, bucket, endpoint string) *AvatarStore {
	return &AvatarStore{client: client, bucket: bucket, endpoint: endpoint}
}

// AvatarKey returns a fresh object key for a file uploaded by userID.
func AvatarKey(userID, fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if ext == "" {
		return userID + "/" + newObjectSuffix()
	}
	return userID + "/" + newObjectSuffix() + "." + ext
}

// Upload stores body and returns the object key and its public URL. An
// object with the same key is overwritten.
func (s *AvatarStore) Upload(ctx context.Context, userID, fileName, contentType string, body io.Reader) (string, string, error) {
	key := AvatarKey(userID, fileName)

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", "", fmt.Errorf("upload avatar: %w", err)
	}

	return key, s.PublicURL(key), nil
}

// PublicURL returns the path-style URL of key in the avatars bucket.
func (s *AvatarStore) PublicURL(key string) string {
	return strings.TrimRight(s.endpoint, "/") + "/" + s.bucket + "/" + key
}
