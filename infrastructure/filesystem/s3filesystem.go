// Package filesystem reads and writes files that live either on local disk or
// in S3, addressed as a path or an s3://bucket/key URL.
package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// ObjectAPI is the part of the S3 client used here.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Location struct {
	Bucket string
	Key    string
	// Path is set for local files.
	Path string
}

func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, errors.New("empty location")
	}
	if !strings.HasPrefix(s, s3Scheme) {
		return Location{Path: s}, nil
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(s, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", s)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

func (l Location) IsS3() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsS3() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

type FileSystem struct {
	client ObjectAPI
}

// New returns a file system backed by client for S3 locations. client may be
// nil when only local paths are used.
func New(client ObjectAPI) *FileSystem {
	return &FileSystem{client: client}
}

// NewFor builds a FileSystem able to serve loc, loading the default AWS
// configuration only when loc is in S3.
func NewFor(ctx context.Context, loc Location) (*FileSystem, error) {
	if !loc.IsS3() {
		return New(nil), nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(s3.NewFromConfig(cfg)), nil
}

// ReadFile copies the file at loc into w.
func (fs *FileSystem) ReadFile(ctx context.Context, loc Location, w io.Writer) error {
	if !loc.IsS3() {
		f, err := os.Open(loc.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}
	if fs.client == nil {
		return fmt.Errorf("no S3 client configured for %s", loc)
	}

	resp, err := fs.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return fmt.Errorf("failed to get object %s from bucket %s: %w", loc.Key, loc.Bucket, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to copy object %s from bucket %s: %w", loc.Key, loc.Bucket, err)
	}
	return nil
}

// WriteFile stores data at loc, replacing any existing file.
func (fs *FileSystem) WriteFile(ctx context.Context, loc Location, data []byte, contentType string) error {
	if !loc.IsS3() {
		return os.WriteFile(loc.Path, data, 0o644)
	}
	if fs.client == nil {
		return fmt.Errorf("no S3 client configured for %s", loc)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(loc.Bucket),
		Key:           aws.String(loc.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := fs.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to put object %s to bucket %s: %w", loc.Key, loc.Bucket, err)
	}
	return nil
}
