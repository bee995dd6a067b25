package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"homehive/pkg/model"
)

type FileClient struct {
	httpClient *HttpClient
}

func NewFileClient(httpClient *HttpClient) *FileClient {
	return &FileClient{httpClient: httpClient}
}

// Upload sends a single file as multipart form data.
func (c *FileClient) Upload(ctx context.Context, filename string, content io.Reader) (*model.UploadResult, error) {
	body, contentType, err := encodeMultipart(map[string]io.Reader{filename: content})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.POSTRaw(ctx, "/files/upload", body, contentType)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var result model.UploadResult
	if err := decodeData(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadMultiple sends several files in one multipart request.
func (c *FileClient) UploadMultiple(ctx context.Context, files map[string]io.Reader) ([]*model.UploadResult, error) {
	body, contentType, err := encodeMultipart(files)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.POSTRaw(ctx, "/files/upload-multiple", body, contentType)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var results []*model.UploadResult
	if err := decodeData(resp, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *FileClient) Delete(ctx context.Context, fileURL string) error {
	// The delete endpoint takes the target URL in the body, not the path.
	resp, err := c.httpClient.request(ctx, "DELETE", "/files/delete", map[string]string{"url": fileURL}, nil)
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}

func encodeMultipart(files map[string]io.Reader) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for filename, content := range files {
		part, err := writer.CreateFormFile("files", filepath.Base(filename))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, content); err != nil {
			return nil, "", fmt.Errorf("failed to encode %s: %w", filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
