package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// ParseImageDataURI splits a "data:<mime>;base64,<data>" URI into its mime
// type and raw base64 payload. Bare base64 is accepted and assumed jpeg.
func ParseImageDataURI(dataURI string) (mimeType, payload string, err error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "image/jpeg", dataURI, nil
	}
	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid base64 image")
	}
	mediaType := strings.TrimPrefix(parts[0], "data:")      // "image/jpeg;base64"
	mimeType = strings.SplitN(mediaType, ";", 2)[0]         // "image/jpeg"
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		return "", "", fmt.Errorf("unsupported content type %q", mimeType)
	}
	return mimeType, parts[1], nil
}

// UploadMealImage stores the decoded meal photo in S3 and returns its URL,
// which is persisted with the meal as the original image reference.
func UploadMealImage(ctx context.Context, imageBase64, mimeType string, userID uint) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("s3 client not initialized")
	}
	imageData, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	ext := ".jpg"
	if parts := strings.SplitN(mimeType, "/", 2); len(parts) == 2 && parts[1] != "jpeg" {
		ext = "." + parts[1]
	}

	key := fmt.Sprintf("meal-images/%d-%d%s", userID, time.Now().UnixNano(), ext)

	bucket := os.Getenv("S3_BUCKET")
	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}
