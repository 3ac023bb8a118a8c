package newsletter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc, err := NewService(ServiceConfig{Repo: NewMemRepo()})
	require.NoError(t, err)
	return &Handler{Service: svc}
}

func postSubscription(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Subscribe(rec, httptest.NewRequest(http.MethodPost, "/api/newsletter", strings.NewReader(body)))
	return rec
}

func TestSubscribeEndpointCreatesSubscription(t *testing.T) {
	handler := newTestHandler(t)
	rec := postSubscription(handler, `{"email":"a@example.com","businessName":"Warung A"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created Subscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, 1, created.ID)
	require.Equal(t, "a@example.com", created.Email)
}

func TestSubscribeEndpointRejectsDuplicate(t *testing.T) {
	handler := newTestHandler(t)
	require.Equal(t, http.StatusCreated, postSubscription(handler, `{"email":"a@example.com","businessName":"Warung A"}`).Code)

	rec := postSubscription(handler, `{"email":"a@example.com","businessName":"Warung B"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid newsletter data", body["error"])
	require.Equal(t, CodeDuplicateEmail, body["code"])
}

func TestSubscribeEndpointRejectsMalformedJSON(t *testing.T) {
	handler := newTestHandler(t)
	rec := postSubscription(handler, "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid newsletter data", body["error"])
}

func TestSubscribeEndpointRejectsMissingBusinessName(t *testing.T) {
	handler := newTestHandler(t)
	rec := postSubscription(handler, `{"email":"a@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid newsletter data", body["error"])
	require.Equal(t, "VALIDATION", body["code"])
}
