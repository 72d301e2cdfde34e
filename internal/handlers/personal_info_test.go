package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfoNullWhenMissing(t *testing.T) {
	c := newClient(t)
	c.register("alice", "Secr3t!", "")

	rec := c.do(http.MethodGet, "/api/private/personal-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestPersonalInfoUpsert(t *testing.T) {
	c := newClient(t)
	c.register("alice", "Secr3t!", "")

	rec := c.do(http.MethodPost, "/api/private/personal-info", map[string]interface{}{
		"fullName":  "Alice Liddell",
		"residence": "Oxford",
		// The owner must come from the session, not the body
		"userId": 999,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var info map[string]interface{}
	decode(t, rec, &info)
	assert.Equal(t, "Alice Liddell", info["fullName"])
	assert.Equal(t, float64(1), info["userId"])
	firstID := info["id"]

	// Second POST merges instead of creating a duplicate
	rec = c.do(http.MethodPost, "/api/private/personal-info", map[string]interface{}{
		"bio": "Through the looking glass",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &info)
	assert.Equal(t, firstID, info["id"])
	assert.Equal(t, "Alice Liddell", info["fullName"])
	assert.Equal(t, "Through the looking glass", info["bio"])

	rec = c.do(http.MethodGet, "/api/private/personal-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &info)
	assert.Equal(t, firstID, info["id"])
	assert.Equal(t, "Through the looking glass", info["bio"])
}

func TestPersonalInfoCreateRequiresFullName(t *testing.T) {
	c := newClient(t)
	c.register("alice", "Secr3t!", "")

	rec := c.do(http.MethodPost, "/api/private/personal-info", map[string]interface{}{
		"bio": "no name yet",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersonalInfoPrivateData(t *testing.T) {
	c := newClient(t)
	c.register("alice", "Secr3t!", "")

	rec := c.do(http.MethodPost, "/api/private/personal-info", map[string]interface{}{
		"fullName":    "Alice Liddell",
		"privateData": map[string]interface{}{"favoriteColor": "blue", "luckyNumber": 7},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var info map[string]interface{}
	decode(t, rec, &info)
	private, ok := info["privateData"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "blue", private["favoriteColor"])
}

func TestPersonalInfoScopedToUser(t *testing.T) {
	alice := newClient(t)
	alice.register("alice", "Secr3t!", "")
	rec := alice.do(http.MethodPost, "/api/private/personal-info", map[string]interface{}{
		"fullName": "Alice Liddell",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	bob := alice.sameSiteClient()
	bob.register("bob", "Hunter2!", "")

	rec = bob.do(http.MethodGet, "/api/private/personal-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}
