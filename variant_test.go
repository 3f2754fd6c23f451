package linkedin_test

import (
	"encoding/json"
	"testing"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonVariant_Extract(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		rec := linkedin.EntityRecord(`{"title":{"text":"Jane Doe"},"primarySubtitle":{"text":"Engineer"},"bserpEntityNavigationalUrl":"https://x"}`)

		row := linkedin.PersonVariant.Extract(rec)

		got, err := json.Marshal(row)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Jane Doe","subtitle":"Engineer","position":null,"linkedinUrl":"https://x"}`, string(got))
	})

	t.Run("missing nested keys default to null", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			rec  string
		}{
			{name: "empty object", rec: `{}`},
			{name: "intermediate object missing", rec: `{"bserpEntityNavigationalUrl":"https://x"}`},
			{name: "intermediate is null", rec: `{"title":null,"summary":null}`},
			{name: "leaf is null", rec: `{"title":{"text":null}}`},
			{name: "unrelated entity type", rec: `{"$type":"com.linkedin.ad","creative":{"id":7}}`},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				row := linkedin.PersonVariant.Extract(linkedin.EntityRecord(tt.rec))

				assert.Nil(t, row.Value("name"))
				assert.Nil(t, row.Value("position"))
				assert.Len(t, row.Values, 4)
			})
		}
	})
}

func TestCompanyVariant_Extract(t *testing.T) {
	t.Parallel()

	rec := linkedin.EntityRecord(`{
		"name": "Acme AG",
		"tagline": "We dig.",
		"description": "Tunnels and anvils.",
		"websiteUrl": "https://acme.example",
		"foundedOn": {"year": 1952},
		"headquarter": {"address": {"city": "Zürich", "country": "CH", "geographicArea": "ZH"}},
		"phone": {"number": "+41 44 000 00 00"},
		"specialities": ["tunnels", "anvils"],
		"employeeCountRange": {"start": 51, "end": 200}
	}`)

	row := linkedin.CompanyVariant.Extract(rec)

	assert.Equal(t, "Acme AG", row.Value("name"))
	assert.Equal(t, "Zürich", row.Value("headquarterCity"))
	assert.Equal(t, "CH", row.Value("headquarterCountry"))
	assert.Equal(t, "+41 44 000 00 00", row.Value("phone"))
	assert.Equal(t, int64(1952), row.Value("foundedOn"))
	assert.Equal(t, int64(51), row.Value("employeeCountRangeStart"))
	assert.Equal(t, int64(200), row.Value("employeeCountRangeEnd"))
	assert.JSONEq(t, `["tunnels","anvils"]`, string(row.Value("specialities").(json.RawMessage)))
	assert.Equal(t, 12, row.NonNullCount())
}

func TestVariant_Columns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"name", "subtitle", "position", "linkedinUrl"}, linkedin.PersonVariant.Columns())
	assert.Len(t, linkedin.CompanyVariant.Columns(), 12)
}

func TestRow_MarshalJSON_PreservesColumnOrder(t *testing.T) {
	t.Parallel()

	row := linkedin.Row{
		Columns: []string{"b", "a"},
		Values:  []any{"x", nil},
	}

	got, err := json.Marshal(row)

	require.NoError(t, err)
	assert.Equal(t, `{"b":"x","a":null}`, string(got))
}
