package indexer

import (
	"errors"
	"fmt"
)

type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeInfo    NoticeType = "info"
	NoticeError   NoticeType = "error"
)

// Notice is the admin-facing outcome of a send.
type Notice struct {
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
}

// NoticeFor turns the result of a send trigger into an admin notice.
func NoticeFor(report *Report, err error) Notice {
	switch {
	case err == nil && report != nil:
		return Notice{
			Type:    NoticeSuccess,
			Message: fmt.Sprintf("%d product(s) sent to Algolia index %q.", report.Products, report.IndexName),
		}
	case err == nil:
		return Notice{Type: NoticeInfo, Message: "Nothing was sent to Algolia."}
	case errors.Is(err, ErrNotConfigured):
		return Notice{Type: NoticeError, Message: "Enter your Algolia application ID, admin API key and index name before sending products."}
	case errors.Is(err, ErrAutoSendDisabled):
		return Notice{Type: NoticeInfo, Message: "Automatic indexing of new products is disabled."}
	case errors.Is(err, ErrNotEligible):
		return Notice{Type: NoticeInfo, Message: "Only published products are sent to Algolia."}
	}
	return Notice{Type: NoticeError, Message: fmt.Sprintf("Sending products to Algolia failed: %v", err)}
}
