package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response carries the raw body alongside the completed *http.Response so
// callers can decode it more than once.
type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (r *Response) ToString() string {
	return fmt.Sprintf("status=%d body=%s", r.StatusCode, string(r.Body))
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// SuccessEnvelope mirrors the backend's {"data": ...} wrapper.
type SuccessEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// PaginatedEnvelope mirrors the backend's list wrapper.
type PaginatedEnvelope struct {
	Data       json.RawMessage `json:"data"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int64           `json:"offset"`
}

type Metadata struct {
	TotalCount int64
	Limit      int
	Offset     int64
}

// GetErrorMessage pulls the human-readable message out of an error response,
// whichever field the backend happened to use.
func GetErrorMessage(resp *Response) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := resp.DecodeJSON(&errResp); err != nil {
		return http.StatusText(resp.StatusCode)
	}

	if errResp.Message != "" {
		return errResp.Message
	}
	if errResp.Error != "" {
		return errResp.Error
	}
	if errResp.Code != "" {
		return errResp.Code
	}
	return http.StatusText(resp.StatusCode)
}

// decodeData unwraps the success envelope into target.
func decodeData(resp *Response, target any) error {
	var envelope SuccessEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return fmt.Errorf("could not decode response envelope:\n%+v\n%s", resp.ToString(), err)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("could not decode response data:\n%+v\n%s", resp.ToString(), err)
	}
	return nil
}

// decodePaginated unwraps the list envelope into target and returns paging
// metadata.
func decodePaginated(resp *Response, target any) (*Metadata, error) {
	var envelope PaginatedEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode paginated response:\n%+v\n%s", resp.ToString(), err)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return nil, fmt.Errorf("could not decode paginated data:\n%+v\n%s", resp.ToString(), err)
	}
	return &Metadata{
		TotalCount: envelope.TotalCount,
		Limit:      envelope.Limit,
		Offset:     envelope.Offset,
	}, nil
}
