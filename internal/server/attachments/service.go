// Package attachments issues presigned URLs for encrypted attachment blobs.
// Clients encrypt attachments with the same hybrid scheme as message bodies
// before uploading, so the object store only ever sees ciphertext.
package attachments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/vaultchat/vaultchat/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type Service struct {
	config *sc.Config
}

func NewService(config *sc.Config) *Service {
	return &Service{config: config}
}

const keyPrefix = "blobs/"

// GetRandomStorageKey allocates a key under the uploader's prefix,
// partitioned by date. The uuid keeps keys unguessable: possession of a key
// is what authorizes a download, since recipients must be able to fetch
// blobs their senders uploaded.
func GetRandomStorageKey(identityID string) string {
	d := time.Now()
	return fmt.Sprintf("%s%s/%d/%d/%d/%v", keyPrefix, identityID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// ValidStorageKey reports whether the key has the shape this service
// allocates. Anything else never left GetRandomStorageKey and is rejected
// before touching the object store.
func ValidStorageKey(key string) bool {
	return strings.HasPrefix(key, keyPrefix) && !strings.Contains(key, "..")
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// PresignedPutURL allocates a fresh storage key under the caller's identity
// and returns it with a URL authorizing a single upload.
func (s *Service) PresignedPutURL(ctx context.Context, identityID string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(identityID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.AttachmentURLTTL))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PresignedGetURL authorizes a download of an existing attachment blob.
func (s *Service) PresignedGetURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.AttachmentURLTTL))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
