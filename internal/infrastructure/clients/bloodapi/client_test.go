package bloodapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

func TestHTTPClient_SearchAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blood/availability", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "O-", r.URL.Query().Get("blood_group"))
		assert.Equal(t, "15", r.URL.Query().Get("radius"))

		json.NewEncoder(w).Encode([]entities.BloodBank{
			{ID: "bb-100", Name: "Upstream Bank", BloodInventory: map[string]int{"O-": 3}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	banks, err := client.SearchAvailability(context.Background(), AvailabilityRequest{
		BloodGroup: "O-",
		RadiusKm:   15,
	})
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "Upstream Bank", banks[0].Name)
}

func TestHTTPClient_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.SearchAvailability(context.Background(), AvailabilityRequest{BloodGroup: "A+"})
	assert.NoError(t, err)
}

func TestHTTPClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.SearchAvailability(context.Background(), AvailabilityRequest{BloodGroup: "A+"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API Error: 503")
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.FindNearby(context.Background(), NearbyRequest{Latitude: 12.9, Longitude: 77.6, RadiusKm: 5})
	assert.Error(t, err)
}

func TestHTTPClient_CreateRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/blood/request", r.URL.Path)

		var input entities.BloodRequestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "AB+", input.BloodGroup)

		json.NewEncoder(w).Encode(entities.BloodRequest{
			RequestID: "REQ-42",
			Status:    entities.RequestStatusPending,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	request, err := client.CreateRequest(context.Background(), entities.BloodRequestInput{
		BloodGroup:    "AB+",
		UnitsRequired: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "REQ-42", request.RequestID)
}

func TestHTTPClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	assert.NoError(t, client.Health(context.Background()))
}
