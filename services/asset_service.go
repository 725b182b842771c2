package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"printdoot_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AssetUploader stores a buyer-supplied image and returns a durable URL.
// Checkout only depends on this narrow contract; tests substitute a fake.
type AssetUploader interface {
	UploadBase64Image(ctx context.Context, payload, extension, folder string) (string, error)
}

// S3AssetService uploads customization assets to S3, optionally fronted by a
// CDN for the returned URL.
type S3AssetService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *s3.Client
}

func NewS3AssetService(logger *gecho.Logger, cfg *structs.Config) (*S3AssetService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3AssetService{
		logger: logger,
		cfg:    cfg,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

// UploadBase64Image decodes a base64 payload (optionally a data URI) and
// uploads it under a unique key in the given folder.
func (as *S3AssetService) UploadBase64Image(ctx context.Context, payload, extension, folder string) (string, error) {
	// Strip a "data:image/png;base64," style prefix if present
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("uploaded file is empty")
	}

	if extension == "" {
		extension = "jpg"
	}

	key := fmt.Sprintf("%s/%s.%s", folder, strings.ReplaceAll(uuid.NewString(), "-", ""), extension)

	_, err = as.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(as.cfg.AWS.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/" + extension),
	})
	if err != nil {
		as.logger.Error("Failed to upload asset to S3",
			gecho.Field("error", err),
			gecho.Field("key", key))
		return "", fmt.Errorf("image upload failed: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", as.cfg.AWS.BucketName, as.cfg.AWS.Region, key)
	if as.cfg.AWS.CloudfrontURL != "" {
		url = fmt.Sprintf("%s/%s", as.cfg.AWS.CloudfrontURL, key)
	}

	as.logger.Debug("Asset uploaded", gecho.Field("key", key))

	return url, nil
}
