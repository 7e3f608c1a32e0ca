package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// GroceryItem is an item of the grocery list. Items are owned by the backend.
type GroceryItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	// Expiry is a date string, empty when unknown.
	Expiry string `json:"expiry,omitempty"`
}

// CreateItemsRequest is the body of POST /items.
type CreateItemsRequest struct {
	Prompt string `json:"prompt"`
}

// CreateItemsResponse is the body of a successful POST /items. Both fields are optional.
type CreateItemsResponse struct {
	Message *string
	// Count is kept as sent; the backend is not required to send an integer.
	Count *float64
}

// ListItems fetches the full grocery list.
// A payload that is not an array yields an empty list, and malformed entries are skipped.
func (c *Client) ListItems(ctx context.Context) ([]GroceryItem, error) {
	body, err := c.do(ctx, http.MethodGet, "/items", nil)
	if err != nil {
		return nil, err
	}

	items := []GroceryItem{}
	result := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !result.IsArray() {
		c.log.Warn("grocery list is not an array", "type", result.Type.String())
		return items, nil
	}
	for i, entry := range result.Array() {
		var item GroceryItem
		if !entry.IsObject() {
			c.log.Warn("skipping grocery item", "index", i, "raw", entry.Raw)
			continue
		}
		if err := json.Unmarshal([]byte(entry.Raw), &item); err != nil {
			c.log.Warn("skipping grocery item", "index", i, "raw", entry.Raw, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateItems sends free text to the backend which extracts and stores items from it.
func (c *Client) CreateItems(ctx context.Context, prompt string) (*CreateItemsResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/items", &CreateItemsRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	response := &CreateItemsResponse{}
	if !gjson.ValidBytes(body) {
		c.log.Warn("create items response is not json", "body", string(body))
		return response, nil
	}
	if message := gjson.GetBytes(body, "message"); message.Type == gjson.String {
		value := message.String()
		response.Message = &value
	}
	if count := gjson.GetBytes(body, "count"); count.Type == gjson.Number {
		value := count.Float()
		response.Count = &value
	}
	return response, nil
}
