// internal/services/storage_service.go
package services

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/turhanbey/presetshop-backend/internal/config"
)

// StorageService hands out short-lived download links for purchased files.
// Without AWS credentials it stays disabled and download links are simply
// unavailable.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	svc := &StorageService{cfg: cfg}

	if cfg.AWS.AccessKeyID == "" {
		logrus.Warn("AWS credentials not configured, download links disabled")
		return svc
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to create AWS session, download links disabled")
		return svc
	}

	svc.s3Client = s3.New(sess)
	return svc
}

func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

// DownloadTTLSeconds reports how long a presigned link stays valid.
func (s *StorageService) DownloadTTLSeconds() int {
	return s.cfg.AWS.DownloadTTL * 60
}

// DownloadURL presigns a time-limited GET for the stored object key.
func (s *StorageService) DownloadURL(key string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("download storage is not configured")
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.cfg.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(time.Duration(s.cfg.AWS.DownloadTTL) * time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return url, nil
}
