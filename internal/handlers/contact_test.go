package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "I saw your portfolio and would like to talk.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]int
	decode(t, rec, &body)
	assert.Equal(t, 1, body["id"])
}

func TestSubmitContactValidation(t *testing.T) {
	valid := map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "I saw your portfolio and would like to talk.",
	}

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing name", func(m map[string]string) { delete(m, "name") }},
		{"missing email", func(m map[string]string) { delete(m, "email") }},
		{"invalid email", func(m map[string]string) { m["email"] = "not-an-email" }},
		{"missing subject", func(m map[string]string) { delete(m, "subject") }},
		{"missing message", func(m map[string]string) { delete(m, "message") }},
		{"short message", func(m map[string]string) { m["message"] = "hi" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t)
			req := make(map[string]string, len(valid))
			for k, v := range valid {
				req[k] = v
			}
			tt.mutate(req)

			rec := c.do(http.MethodPost, "/api/contact", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestContactInbox(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "I saw your portfolio and would like to talk.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]int
	decode(t, rec, &created)

	c.register("vincent", "Secr3t!", "")

	rec = c.do(http.MethodGet, "/api/private/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []map[string]interface{}
	decode(t, rec, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, "Visitor", messages[0]["name"])

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/private/messages/%d", created["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msg map[string]interface{}
	decode(t, rec, &msg)
	assert.Equal(t, "Hello", msg["subject"])

	rec = c.do(http.MethodGet, "/api/private/messages/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
