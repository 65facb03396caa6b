package transport

// Config selects and parameterizes the delivery channel for one run. A
// non-empty APIKey picks the SendGrid variant; otherwise mail goes out over
// SMTP, whether or not ServerURL is set (a missing server then fails at
// send time, not at selection time).
type Config struct {
	// APIKey is the SendGrid API key.
	APIKey string

	// ServerURL is the SMTP endpoint in the form
	// scheme://[user:pass@]host[:port]. Scheme "smtps" forces implicit
	// TLS; the port defaults to 587.
	ServerURL string
}
