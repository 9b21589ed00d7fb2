// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	shell "github.com/ipfs/go-ipfs-api"
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/utils"
)

var ErrNoFiles = errors.New("no files provided")

type FileTooLargeError struct {
	Filename string
	Size     int64
	MaxSize  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, maximum is %d bytes", e.Filename, e.Size, e.MaxSize)
}

// Pinner stores content and returns its content identifier.
type Pinner interface {
	Pin(ctx context.Context, name string, content io.Reader) (string, error)
}

// IPFSPinner adds and pins content on an IPFS node through its HTTP API.
type IPFSPinner struct {
	sh *shell.Shell
}

func NewIPFSPinner(apiURL string) *IPFSPinner {
	return &IPFSPinner{sh: shell.NewShell(apiURL)}
}

func (p *IPFSPinner) Pin(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cid, err := p.sh.Add(content, shell.Pin(true))
	if err != nil {
		return "", fmt.Errorf("ipfs add %s: %w", name, err)
	}
	return cid, nil
}

// S3Pinner stores content in a bucket keyed by its CIDv0 digest.
type S3Pinner struct {
	client *s3.S3
	bucket string
}

func NewS3Pinner(cfg config.AWSConfig) (*S3Pinner, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Pinner{
		client: s3.New(sess),
		bucket: cfg.S3Bucket,
	}, nil
}

func (p *S3Pinner) Pin(ctx context.Context, name string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	cid := utils.ContentDigestCID(data)

	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String("ipfs/" + cid),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata: map[string]*string{
			"filename": aws.String(filepath.Base(name)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return cid, nil
}

// DigestPinner computes the content identifier without storing anything. It
// backs local development.
type DigestPinner struct{}

func (DigestPinner) Pin(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return utils.ContentDigestCID(data), nil
}

// NewPinner prefers an IPFS node, then S3, then local digests.
func NewPinner(cfg *config.Config) (Pinner, error) {
	switch {
	case cfg.Storage.IPFSAPIURL != "":
		logrus.WithField("api", cfg.Storage.IPFSAPIURL).Info("Pinning to IPFS")
		return NewIPFSPinner(cfg.Storage.IPFSAPIURL), nil
	case cfg.AWS.AccessKeyID != "":
		logrus.WithField("bucket", cfg.AWS.S3Bucket).Info("Pinning to S3")
		return NewS3Pinner(cfg.AWS)
	default:
		logrus.Warn("No IPFS node or S3 bucket configured, content identifiers are computed locally")
		return DigestPinner{}, nil
	}
}

type StorageService struct {
	pinner  Pinner
	maxSize int64
}

func NewStorageService(pinner Pinner, cfg *config.Config) *StorageService {
	return &StorageService{
		pinner:  pinner,
		maxSize: cfg.Storage.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *StorageService) MaxFileSize() int64 {
	return s.maxSize
}

// PinFiles checks every file against the size limit before pinning any of
// them, then pins them in order.
func (s *StorageService) PinFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	for _, fh := range files {
		if fh.Size > s.maxSize {
			return nil, &FileTooLargeError{Filename: fh.Filename, Size: fh.Size, MaxSize: s.maxSize}
		}
	}

	cids := make([]string, 0, len(files))
	for _, fh := range files {
		cid, err := s.pin(ctx, fh)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"event":    "pin",
			"filename": fh.Filename,
			"size":     fh.Size,
			"cid":      cid,
		}).Info("File pinned")
		cids = append(cids, cid)
	}
	return cids, nil
}

func (s *StorageService) pin(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return s.pinner.Pin(ctx, fh.Filename, f)
}
