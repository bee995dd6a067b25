package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"homehive/pkg/model"
)

type PropertyClient struct {
	httpClient *HttpClient
}

func NewPropertyClient(httpClient *HttpClient) *PropertyClient {
	return &PropertyClient{httpClient: httpClient}
}

func (c *PropertyClient) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Property, *Metadata, error) {
	path := fmt.Sprintf("/properties?limit=%d&offset=%d", limit, offset)
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, nil, err
	}
	return decodeProperties(resp)
}

func (c *PropertyClient) GetByID(ctx context.Context, id string) (*model.Property, error) {
	resp, err := c.httpClient.GET(ctx, "/properties/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}
	return decodeProperty(resp)
}

func (c *PropertyClient) Create(ctx context.Context, property model.Property) (*model.Property, error) {
	resp, err := c.httpClient.POST(ctx, "/properties", property)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}
	return decodeProperty(resp)
}

func (c *PropertyClient) Update(ctx context.Context, id string, property model.Property) (*model.Property, error) {
	resp, err := c.httpClient.PUT(ctx, "/properties/"+url.PathEscape(id), property)
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}
	return decodeProperty(resp)
}

func (c *PropertyClient) Delete(ctx context.Context, id string) error {
	resp, err := c.httpClient.DELETE(ctx, "/properties/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	return ensureSuccess(resp)
}

func (c *PropertyClient) Search(ctx context.Context, search model.PropertySearch) ([]*model.Property, *Metadata, error) {
	resp, err := c.httpClient.POST(ctx, "/properties/search", search)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, nil, err
	}
	return decodeProperties(resp)
}

func (c *PropertyClient) Featured(ctx context.Context) ([]*model.Property, error) {
	resp, err := c.httpClient.GET(ctx, "/properties/featured")
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	properties, _, err := decodeProperties(resp)
	return properties, err
}

// FeaturedRandom fetches a random featured selection, optionally excluding
// the listing already shown in the page header.
func (c *PropertyClient) FeaturedRandom(ctx context.Context, limit int, excludeHeader bool) ([]*model.Property, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("excludeHeader", fmt.Sprintf("%t", excludeHeader))

	resp, err := c.httpClient.GET(ctx, "/featured/featured-random?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	properties, _, err := decodeProperties(resp)
	return properties, err
}

// propertyWire absorbs the backend's shape drift: some endpoints return
// "propertyId" instead of "id" and "showcase" instead of "images". All of it
// collapses into model.Property right here; nothing downstream branches on
// shape.
type propertyWire struct {
	model.Property
	PropertyID string   `json:"propertyId"`
	Showcase   []string `json:"showcase"`
}

func (w *propertyWire) normalize() *model.Property {
	p := w.Property
	if p.ID == "" {
		p.ID = w.PropertyID
	}
	if len(p.Images) == 0 {
		p.Images = w.Showcase
	}
	return &p
}

func decodeProperty(resp *Response) (*model.Property, error) {
	var wire propertyWire
	if err := decodeData(resp, &wire); err != nil {
		return nil, err
	}
	return wire.normalize(), nil
}

func decodeProperties(resp *Response) ([]*model.Property, *Metadata, error) {
	var wires []*propertyWire

	metadata, err := decodePaginated(resp, &wires)
	if err != nil {
		// Some list endpoints return a bare data envelope without paging.
		var envelope SuccessEnvelope
		if envErr := json.Unmarshal(resp.Body, &envelope); envErr != nil {
			return nil, nil, err
		}
		if envErr := json.Unmarshal(envelope.Data, &wires); envErr != nil {
			return nil, nil, err
		}
		metadata = nil
	}

	properties := make([]*model.Property, 0, len(wires))
	for _, wire := range wires {
		properties = append(properties, wire.normalize())
	}
	return properties, metadata, nil
}
