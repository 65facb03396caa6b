package transport

import (
	"context"
	"strings"
)

// Attachment is a binary file attached to an outgoing message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one fully-prepared outgoing mail. To holds the raw recipient
// field from the ledger and may contain several semicolon-delimited
// addresses; how many of them are actually addressed is up to the variant.
type Message struct {
	From       string
	FromName   string
	To         string
	ToName     string
	Subject    string
	Body       string
	Attachment Attachment
}

// Transport delivers prepared messages. A nil return means the message was
// accepted by the channel; any failure wraps ErrDeliveryFailed and carries
// the diagnostic in the error text. Sends are never retried here.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// Recipients splits a raw ledger address field on ";" and trims whitespace
// and line breaks. Empty entries are dropped.
func Recipients(field string) []string {
	parts := strings.Split(field, ";")
	addrs := make([]string, 0, len(parts))
	for _, part := range parts {
		if addr := strings.Trim(part, " \t\r\n"); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}
