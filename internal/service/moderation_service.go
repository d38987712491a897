package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	cfg "github.com/sankofamarket/catalog-api/internal/config"
	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

const (
	moderationMinConfidence = 60.0
	moderationMaxImages     = 5
)

// ModerationResult summarizes a product image moderation scan.
type ModerationResult struct {
	ProductID string                 `json:"productId"`
	Flagged   bool                   `json:"flagged"`
	Labels    []ImageModerationLabel `json:"labels"`
}

// ImageModerationLabel is one label detected on one image.
type ImageModerationLabel struct {
	ImageURL   string  `json:"imageUrl"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ModerationService scans product images for unsafe content using AWS
// Rekognition. When no region is configured the service stays disabled and
// every scan returns ErrModerationDisabled.
type ModerationService struct {
	client     *rekognition.Client
	httpClient *http.Client
}

// NewModerationService builds the Rekognition client if a region is
// configured. Credentials are resolved by the SDK's default chain.
func NewModerationService(awsCfg cfg.AWSConfig) *ModerationService {
	s := &ModerationService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	if awsCfg.RekognitionRegion == "" {
		log.Info().Msg("Image moderation disabled: no Rekognition region configured")
		return s
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsCfg.RekognitionRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load AWS SDK config, image moderation disabled")
		return s
	}
	s.client = rekognition.NewFromConfig(sdkCfg)
	return s
}

// Enabled reports whether a Rekognition client is available.
func (s *ModerationService) Enabled() bool {
	return s.client != nil
}

// ModerateProduct downloads the product's images and runs
// DetectModerationLabels over each. The product is flagged if any image
// carries a label at or above the confidence floor.
func (s *ModerationService) ModerateProduct(ctx context.Context, p *models.Product) (*ModerationResult, error) {
	if !s.Enabled() {
		return nil, utils.ErrModerationDisabled
	}

	result := &ModerationResult{
		ProductID: p.ID,
		Labels:    []ImageModerationLabel{},
	}

	images := p.Images
	if len(images) > moderationMaxImages {
		images = images[:moderationMaxImages]
	}

	for _, url := range images {
		data, err := s.fetchImage(ctx, url)
		if err != nil {
			log.Warn().Err(err).Str("url", url).Str("productId", p.ID).Msg("Failed to fetch product image")
			return nil, utils.ErrModerationFetchFail
		}

		out, err := s.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
			Image:         &types.Image{Bytes: data},
			MinConfidence: aws.Float32(moderationMinConfidence),
		})
		if err != nil {
			log.Error().Err(err).Str("productId", p.ID).Msg("AWS DetectModerationLabels failed")
			return nil, fmt.Errorf("provider error: %w", err)
		}

		for _, label := range out.ModerationLabels {
			result.Labels = append(result.Labels, ImageModerationLabel{
				ImageURL:   url,
				Name:       aws.ToString(label.Name),
				Confidence: float64(aws.ToFloat32(label.Confidence)),
			})
		}
	}

	result.Flagged = len(result.Labels) > 0
	return result, nil
}

func (s *ModerationService) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching image", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
