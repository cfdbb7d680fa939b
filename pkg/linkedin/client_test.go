package linkedin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-normalizer/pkg/linkedin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/profiles/ada", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"firstName": "Ada",
			"lastName": "Lovelace",
			"experience": [{
				"companyName": "Acme",
				"timePeriod": {"startDate": {"month": 6, "year": 2019}}
			}],
			"languages": [{"name": "English", "proficiency": "NATIVE_OR_BILINGUAL"}]
		}`))
	}))
	defer srv.Close()

	c := linkedin.NewClientWithBaseURL(srv.URL)
	p, err := c.Profile(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	require.Len(t, p.Experience, 1)
	require.NotNil(t, p.Experience[0].TimePeriod.StartDate)
	assert.Equal(t, 6, p.Experience[0].TimePeriod.StartDate.Month)
	assert.Equal(t, linkedin.ProficiencyNativeOrBilingual, p.Languages[0].Proficiency)
}

func TestClientContactInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/profiles/ada/contact-info", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"emailAddress": "ada@example.com", "twitter": ["ada"]}`))
	}))
	defer srv.Close()

	c := linkedin.NewClientWithBaseURL(srv.URL)
	ci, err := c.ContactInfo(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", ci.EmailAddress)
	assert.Equal(t, []string{"ada"}, ci.Twitter)
}

func TestClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := linkedin.NewClientWithBaseURL(srv.URL)
	_, err := c.ContactInfo(context.Background(), "ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
