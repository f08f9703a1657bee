package staging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"porosemi/internal/domain/service"
	"porosemi/pkg/logger"
)

// CloudinaryClient implements service.StagingStore against Cloudinary.
// Staged objects are scratch space for one pipeline run; the provider
// performs the actual encode when a rendition URL is fetched.
type CloudinaryClient struct {
	cld        *cloudinary.Cloudinary
	httpClient *http.Client
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret string) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %v", err)
	}

	return &CloudinaryClient{
		cld: cld,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

func (c *CloudinaryClient) Put(ctx context.Context, data []byte, publicID, folder string) (*service.StagedObject, error) {
	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: "image",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("staging upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("staging upload rejected: %s", resp.Error.Message)
	}

	return &service.StagedObject{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

func (c *CloudinaryClient) FetchRendition(ctx context.Context, publicID string, spec service.TransformSpec) ([]byte, error) {
	img, err := c.cld.Image(publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to build rendition asset for %s: %w", publicID, err)
	}
	img.Transformation = transformation(spec)

	url, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("failed to build rendition url for %s: %w", publicID, err)
	}

	return c.download(ctx, url)
}

func (c *CloudinaryClient) Delete(ctx context.Context, publicID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("staging delete of %s failed: %w", publicID, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("staging delete of %s returned %q", publicID, resp.Result)
	}
	if resp.Result == "not found" {
		logger.Warn("Staging object %s already gone", publicID)
	}
	return nil
}

func (c *CloudinaryClient) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rendition download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rendition download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// transformation renders a TransformSpec as a Cloudinary delivery
// transformation string, e.g. "pg_1,c_limit,w_800,h_1000,f_webp,q_85".
func transformation(spec service.TransformSpec) string {
	var parts []string
	if spec.Page > 0 {
		parts = append(parts, fmt.Sprintf("pg_%d", spec.Page))
	}
	if spec.MaxWidth > 0 && spec.MaxHeight > 0 {
		parts = append(parts, fmt.Sprintf("c_limit,w_%d,h_%d", spec.MaxWidth, spec.MaxHeight))
	}
	if spec.Format != "" {
		parts = append(parts, "f_"+spec.Format)
	}
	if spec.Quality > 0 {
		parts = append(parts, fmt.Sprintf("q_%d", spec.Quality))
	}
	return strings.Join(parts, ",")
}
