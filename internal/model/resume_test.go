package model_test

import (
	"encoding/json"
	"testing"

	"resume-normalizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRoundTrip(t *testing.T) {
	in := model.Resume{
		Schema: "https://example.com/schema.json",
		Basics: &model.Basics{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Location: &model.Location{
				City:        "London",
				CountryCode: "GB",
			},
		},
		Work: []model.Work{
			{
				Name:       "Analytical Engines Ltd",
				Position:   "Lead Analyst",
				StartDate:  "1842-06",
				Summary:    "Designed the first program.",
				Highlights: []string{"Wrote notes on the engine"},
			},
		},
		Languages: []model.Language{
			{Language: "English", Fluency: "Native"},
		},
		Meta: &model.Meta{Version: "v1.0.0", LastModified: "2024-01-01T00:00:00Z"},
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out model.Resume
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestResumeOmitsAbsentFields(t *testing.T) {
	b, err := json.Marshal(model.Resume{Basics: &model.Basics{Name: "Ada"}})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "work")
	assert.NotContains(t, raw, "meta")

	var basics map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["basics"], &basics))
	assert.Contains(t, basics, "name")
	assert.NotContains(t, basics, "email")
	assert.NotContains(t, basics, "location")
}

func TestUnknownFieldsSurviveRoundTrip(t *testing.T) {
	doc := `{
		"basics": {"name": "Ada", "x-pronouns": "she/her"},
		"work": [{"name": "Acme", "companyLogo": "https://cdn.example.com/acme.png"}],
		"x-vendor": {"trace": 42}
	}`

	var r model.Resume
	require.NoError(t, json.Unmarshal([]byte(doc), &r))

	require.NotNil(t, r.Basics)
	assert.Equal(t, "Ada", r.Basics.Name)
	assert.Equal(t, json.RawMessage(`"she/her"`), r.Basics.Extra["x-pronouns"])
	require.Len(t, r.Work, 1)
	assert.Contains(t, r.Work[0].Extra, "companyLogo")
	assert.Contains(t, r.Extra, "x-vendor")

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.JSONEq(t, `{"trace": 42}`, string(raw["x-vendor"]))

	var basics map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["basics"], &basics))
	// unknown key sits at the same level as the modeled one
	assert.Contains(t, basics, "name")
	assert.Contains(t, basics, "x-pronouns")
}

func TestTypedFieldWinsOverStaleExtra(t *testing.T) {
	r := model.Resume{
		Basics: &model.Basics{
			Name:  "Ada",
			Extra: map[string]json.RawMessage{"name": json.RawMessage(`"stale"`)},
		},
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var raw struct {
		Basics struct {
			Name string `json:"name"`
		} `json:"basics"`
	}
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "Ada", raw.Basics.Name)
}

func TestUnmarshalRejectsBadFieldFormats(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		kind model.ErrorKind
	}{
		{
			name: "bad email",
			doc:  `{"basics": {"email": "invalid-email"}}`,
			kind: model.InvalidEmailFormat,
		},
		{
			name: "bad country code",
			doc:  `{"basics": {"location": {"countryCode": "USA"}}}`,
			kind: model.InvalidCountryCode,
		},
		{
			name: "bad work date",
			doc:  `{"work": [{"startDate": "June 1842"}]}`,
			kind: model.InvalidDateFormat,
		},
		{
			name: "bad certificate expiration",
			doc:  `{"certificates": [{"endDate": "someday"}]}`,
			kind: model.InvalidDateFormat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r model.Resume
			err := json.Unmarshal([]byte(tc.doc), &r)
			require.Error(t, err)
			var fe *model.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.kind, fe.Kind)
		})
	}
}

func TestUnmarshalReportsElementIndexInFieldPath(t *testing.T) {
	doc := `{"work": [{"startDate": "2020-01"}, {"startDate": "June 1842"}]}`
	var r model.Resume
	err := json.Unmarshal([]byte(doc), &r)
	require.Error(t, err)
	var fe *model.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "work.1.startDate", fe.Field)

	doc = `{"certificates": [{"endDate": "someday"}]}`
	err = json.Unmarshal([]byte(doc), &r)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "certificates.0.endDate", fe.Field)
}

func TestUnmarshalAcceptsAbsentAndEmptyValues(t *testing.T) {
	// empty string means absent and is never validated
	var r model.Resume
	require.NoError(t, json.Unmarshal([]byte(`{"basics": {"email": ""}, "work": [{"startDate": ""}]}`), &r))
}

func TestValidateResumeAgainstSchema(t *testing.T) {
	r := &model.Resume{
		Basics: &model.Basics{Name: "Ada", Email: "ada@example.com"},
		Work:   []model.Work{{Name: "Acme", StartDate: "2020-01"}},
	}
	assert.NoError(t, model.ValidateResume(r))
}

func TestValidateBytesRejectsWrongTypes(t *testing.T) {
	err := model.ValidateBytes([]byte(`{"basics": {"name": 42}}`))
	assert.Error(t, err)
}
