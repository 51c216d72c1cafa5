package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// PresignImageStore stores images through the backend: it requests a
// presigned S3 PUT URL and uploads the bytes over HTTP. The returned
// reference is the storage key, which the classifier accepts as-is.
type PresignImageStore struct {
	api  Client
	http *http.Client
}

func NewPresignImageStore(api Client) *PresignImageStore {
	return &PresignImageStore{api: api, http: &http.Client{}}
}

func (p *PresignImageStore) Store(ctx context.Context, data []byte, mediaType string) (string, error) {
	key, url, err := p.api.GetUploadURL(ctx, mediaType)
	if err != nil {
		return "", fmt.Errorf("error requesting upload url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mediaType)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}
	return key, nil
}
