package transport

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	mail "github.com/wneessen/go-mail"
)

// defaultSMTPPort is the submission port used when the endpoint URL names
// none.
const defaultSMTPPort = 587

// smtpEndpoint is the parsed form of the server URL.
type smtpEndpoint struct {
	host        string
	port        int
	username    string
	password    string
	implicitTLS bool
}

// SMTP delivers mail over an SMTP submission endpoint. One message is sent
// to every semicolon-delimited recipient of the ledger field. The
// connection lives per send: each call dials, optionally authenticates,
// sends and quits, so a failed row never poisons a shared session.
type SMTP struct {
	endpoint *smtpEndpoint
	log      *slog.Logger
}

// NewSMTP creates the SMTP transport. An empty server URL is valid and
// yields a transport whose sends fail with ErrDeliveryFailed; a malformed
// URL is a configuration error and fails construction.
func NewSMTP(serverURL string, log *slog.Logger) (*SMTP, error) {
	if serverURL == "" {
		return &SMTP{log: log}, nil
	}

	endpoint, err := parseEndpoint(serverURL)
	if err != nil {
		return nil, err
	}
	return &SMTP{endpoint: endpoint, log: log}, nil
}

var _ Transport = (*SMTP)(nil)

// parseEndpoint parses scheme://[user:pass@]host[:port]. The userinfo is
// URL-decoded by net/url; scheme "smtps" (case-insensitive) selects
// implicit TLS, everything else negotiates STARTTLS opportunistically.
func parseEndpoint(serverURL string) (*smtpEndpoint, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidServerURL, serverURL)
	}

	port := defaultSMTPPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid port %q", ErrInvalidServerURL, p)
		}
	}

	endpoint := &smtpEndpoint{
		host:        u.Hostname(),
		port:        port,
		implicitTLS: strings.EqualFold(u.Scheme, "smtps"),
	}
	if u.User != nil {
		endpoint.username = u.User.Username()
		endpoint.password, _ = u.User.Password()
	}
	return endpoint, nil
}

// Send implements Transport.
func (s *SMTP) Send(ctx context.Context, msg *Message) error {
	if s.endpoint == nil {
		return fmt.Errorf("%w: no smtp server configured", ErrDeliveryFailed)
	}

	addrs := Recipients(msg.To)
	if len(addrs) == 0 {
		return fmt.Errorf("%w: no recipient address", ErrDeliveryFailed)
	}

	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return fmt.Errorf("%w: invalid sender address: %v", ErrDeliveryFailed, err)
	}
	for _, addr := range addrs {
		if err := m.AddToFormat(msg.ToName, addr); err != nil {
			return fmt.Errorf("%w: invalid recipient address %q: %v", ErrDeliveryFailed, addr, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	if len(msg.Attachment.Content) > 0 {
		if err := m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Content)); err != nil {
			return fmt.Errorf("%w: attach %s: %v", ErrDeliveryFailed, msg.Attachment.Filename, err)
		}
	}

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	// DialAndSend tears the session down on every path, success or not.
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	s.log.Info("mail sent",
		slog.String("transport", "smtp"),
		slog.String("to", strings.Join(addrs, ", ")),
		slog.String("name", msg.ToName))
	return nil
}

func (s *SMTP) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.endpoint.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.endpoint.implicitTLS {
		opts = append(opts, mail.WithSSL())
	}
	if s.endpoint.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.endpoint.username),
			mail.WithPassword(s.endpoint.password),
		)
	}
	return mail.NewClient(s.endpoint.host, opts...)
}
