package chat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/malonaz/pantry/internal/backend"
)

const (
	errorPrefix          = "Error: "
	quotaErrorMessage    = "API Quota Error (429): You have exceeded the request quota. Please wait a moment and try again."
	networkErrorMessage  = "Network Error: The server did not respond."
	expiryErrorMessage   = "Error: Could not fetch expiring items."
	noExpiringItems      = "Good news! No items are expiring soon."
	expiringListHeader   = "Here are the items expiring in the next 7 days:"
	expiringObjectHeader = "Expiring items:"
)

// ReplyContent derives the assistant reply from a successful item creation.
// An explicit message wins, otherwise the reply confirms the number of items added.
func ReplyContent(response *backend.CreateItemsResponse) string {
	if response.Message != nil && *response.Message != "" {
		return *response.Message
	}
	count := 0.0
	if response.Count != nil {
		count = *response.Count
	}
	return fmt.Sprintf("Successfully added %s items.", strconv.FormatFloat(count, 'f', -1, 64))
}

// DescribeError turns a failed item creation into the text shown to the user.
func DescribeError(err error) string {
	var httpErr *backend.HTTPError
	var networkErr *backend.NetworkError
	switch {
	case errors.As(err, &httpErr):
		switch {
		case httpErr.IsRateLimited():
			return errorPrefix + quotaErrorMessage
		case httpErr.ErrorText != "":
			return errorPrefix + fmt.Sprintf("Server Error (%d): %s", httpErr.StatusCode, httpErr.ErrorText)
		default:
			return errorPrefix + fmt.Sprintf("HTTP Error %d: %s", httpErr.StatusCode, httpErr.StatusText)
		}
	case errors.As(err, &networkErr):
		return errorPrefix + networkErrorMessage
	default:
		return errorPrefix + err.Error()
	}
}

// DescribeExpiry turns an expiry response into the text shown to the user.
func DescribeExpiry(response *backend.ExpiryResponse) string {
	switch response.Kind {
	case backend.ExpiryList:
		content := expiringListHeader + "\n"
		for _, entry := range response.Entries {
			content += "\n- " + entry
		}
		return content
	case backend.ExpiryObject:
		return expiringObjectHeader + "\n\n```json\n" + response.Pretty() + "\n```"
	default:
		return noExpiringItems
	}
}
