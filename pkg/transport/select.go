package transport

import "log/slog"

// Select picks the delivery channel for the whole run: a non-empty API key
// wins, otherwise SMTP. Selection is a pure function of configuration and
// happens once, never per row.
func Select(cfg Config, log *slog.Logger) (Transport, error) {
	if cfg.APIKey != "" {
		return NewSendGrid(cfg.APIKey, log), nil
	}
	return NewSMTP(cfg.ServerURL, log)
}
