package services

import (
	"context"
	"fmt"
	"io"
	"os"

	appContext "github.com/alphabatem/common/context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinIOService is the object storage client used for catalog images.
// Serving the uploaded files stays with the storage tier itself.
type MinIOService struct {
	appContext.DefaultService
	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
}

const MINIO_SVC = "minio_svc"

func (svc MinIOService) Id() string {
	return MINIO_SVC
}

func (svc *MinIOService) Configure(ctx *appContext.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")
	if svc.endpoint == "" {
		svc.endpoint = "localhost:9000"
	}

	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	if svc.accessKey == "" {
		svc.accessKey = "admin"
	}

	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	if svc.secretKey == "" {
		svc.secretKey = "password123"
	}

	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"

	svc.bucketName = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucketName == "" {
		svc.bucketName = "qazkids-media"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MinIOService) Start() error {
	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("MinIO service started successfully with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *MinIOService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created MinIO bucket: %s", svc.bucketName)
	}

	return nil
}

func (svc *MinIOService) UploadFile(objectName string, reader io.Reader, objectSize int64, contentType string) (*minio.UploadInfo, error) {
	ctx := context.Background()

	uploadInfo, err := svc.client.PutObject(ctx, svc.bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to MinIO: %v", err)
	}

	return &uploadInfo, nil
}

func (svc *MinIOService) DeleteFile(objectName string) error {
	ctx := context.Background()

	err := svc.client.RemoveObject(ctx, svc.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file from MinIO: %v", err)
	}

	return nil
}

// PublicURL builds the plain object URL; the bucket is expected to carry a
// public-read policy managed outside this API.
func (svc *MinIOService) PublicURL(objectName string) string {
	scheme := "http"
	if svc.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, svc.endpoint, svc.bucketName, objectName)
}
