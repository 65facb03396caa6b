package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubAPI points the SendGrid client at a local test server.
func stubAPI(t *testing.T, status int, body string) (*SendGrid, *http.Request, *[]byte) {
	t.Helper()

	var (
		captured     http.Request
		capturedBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		capturedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	tp := NewSendGrid("SG.test-key", discardLogger())
	tp.client.Request.BaseURL = srv.URL
	return tp, &captured, &capturedBody
}

func TestSendGrid_SendAccepted(t *testing.T) {
	t.Parallel()

	tp, req, body := stubAPI(t, http.StatusAccepted, "")

	err := tp.Send(context.Background(), &Message{
		From:     "club@example.com",
		FromName: "The Club",
		To:       "ann@example.com; backup@example.com",
		ToName:   "Ann Peeters",
		Subject:  "Membership card",
		Body:     "Dear Ann,",
		Attachment: Attachment{
			Filename: "card.pdf",
			Content:  []byte("%PDF-1.4"),
		},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, req.Method)

	var payload struct {
		Personalizations []struct {
			To []struct {
				Email string `json:"email"`
			} `json:"to"`
		} `json:"personalizations"`
		Attachments []struct {
			Filename    string `json:"filename"`
			Type        string `json:"type"`
			Disposition string `json:"disposition"`
		} `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(*body, &payload))

	// the API path addresses only the first semicolon-delimited recipient
	require.Len(t, payload.Personalizations, 1)
	require.Len(t, payload.Personalizations[0].To, 1)
	require.Equal(t, "ann@example.com", payload.Personalizations[0].To[0].Email)

	require.Len(t, payload.Attachments, 1)
	require.Equal(t, "card.pdf", payload.Attachments[0].Filename)
	require.Equal(t, "application/pdf", payload.Attachments[0].Type)
	require.Equal(t, "attachment", payload.Attachments[0].Disposition)
}

func TestSendGrid_SendRejected(t *testing.T) {
	t.Parallel()

	tp, _, _ := stubAPI(t, http.StatusBadRequest,
		`{"errors":[{"message":"The from address does not match a verified Sender Identity"}]}`)

	err := tp.Send(context.Background(), &Message{
		From:    "club@example.com",
		To:      "ann@example.com",
		Subject: "Membership card",
	})
	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.ErrorContains(t, err, "status 400")
	require.ErrorContains(t, err, "verified Sender Identity")
}

func TestSendGrid_SendRejectedOpaqueBody(t *testing.T) {
	t.Parallel()

	tp, _, _ := stubAPI(t, http.StatusInternalServerError, "upstream exploded")

	err := tp.Send(context.Background(), &Message{
		From: "club@example.com",
		To:   "ann@example.com",
	})
	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.ErrorContains(t, err, "status 500")
	require.ErrorContains(t, err, "upstream exploded")
}

func TestSendGrid_SendWithoutRecipients(t *testing.T) {
	t.Parallel()

	tp := NewSendGrid("SG.test-key", discardLogger())

	err := tp.Send(context.Background(), &Message{To: ";"})
	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.ErrorContains(t, err, "no recipient address")
}
