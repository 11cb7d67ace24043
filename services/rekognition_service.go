package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is the label-detection identifier used when no OpenAI
// key is configured. Labels carry no visual reasoning or preparation, so its
// candidates are deliberately lower fidelity than the vision model's.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Identify detects labels in the image and adapts them into food candidates.
func (r *RekognitionService) Identify(ctx context.Context, imageBase64, mimeType string) ([]FoodCandidate, error) {
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid image encoding: %v", ErrIdentificationUnavailable, err)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentificationUnavailable, err)
	}

	candidates := make([]FoodCandidate, 0, len(out.Labels))
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		confidence := 5
		if l.Confidence != nil {
			// map 0–100 label confidence onto the 1–10 scale
			confidence = int(math.Round(float64(*l.Confidence) / 10))
			if confidence < 1 {
				confidence = 1
			}
			if confidence > 10 {
				confidence = 10
			}
		}
		candidates = append(candidates, FoodCandidate{
			Name:          *l.Name,
			Confidence:    confidence,
			VisualCues:    fmt.Sprintf("detected label %q", *l.Name),
			EstimatedSize: "medium",
		})
	}
	return candidates, nil
}
