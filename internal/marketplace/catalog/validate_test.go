package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PublishRequest)
		wantField string
		wantErr   string
	}{
		{
			name:      "missing name",
			mutate:    func(r *PublishRequest) { r.Name = "" },
			wantField: "name",
			wantErr:   "missing required attribute",
		},
		{
			name:      "missing author",
			mutate:    func(r *PublishRequest) { r.Author = "" },
			wantField: "author",
			wantErr:   "missing required attribute",
		},
		{
			name:      "missing license",
			mutate:    func(r *PublishRequest) { r.License = "" },
			wantField: "license",
			wantErr:   "missing required attribute",
		},
		{
			name:      "missing version",
			mutate:    func(r *PublishRequest) { r.Version = "" },
			wantField: "version",
			wantErr:   "missing required attribute",
		},
		{
			name:      "two-component version",
			mutate:    func(r *PublishRequest) { r.Version = "2.1" },
			wantField: "version",
			wantErr:   "three numeric components",
		},
		{
			name:      "prerelease version",
			mutate:    func(r *PublishRequest) { r.Version = "2.1.0-rc.1" },
			wantField: "version",
			wantErr:   "three numeric components",
		},
		{
			name:      "unknown fee type",
			mutate:    func(r *PublishRequest) { r.FeeType = "tip" },
			wantField: "feeType",
			wantErr:   "must be one of",
		},
		{
			name:      "malformed url",
			mutate:    func(r *PublishRequest) { r.URL = "not-a-url" },
			wantField: "url",
			wantErr:   "valid URL",
		},
		{
			name:      "malformed website",
			mutate:    func(r *PublishRequest) { r.Website = "not-a-url" },
			wantField: "website",
			wantErr:   "valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPublishRequest()
			tt.mutate(req)

			verrs := req.Validate()
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Contains(t, verrs[0].ErrStr, tt.wantErr)
		})
	}
}

func TestPublishRequestValidateOK(t *testing.T) {
	req := validPublishRequest()
	assert.Nil(t, req.Validate())

	// optional fields accept empty values
	req.Website = ""
	req.FeeType = ""
	req.Tags = nil
	assert.Nil(t, req.Validate())

	req.FeeType = string(FeeRevShare)
	req.Website = "https://example.org"
	assert.Nil(t, req.Validate())
}

func TestPublishRequestValidateCollectsAllFailures(t *testing.T) {
	req := &PublishRequest{}
	verrs := req.Validate()
	require.NotNil(t, verrs)

	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field)
	}
	assert.ElementsMatch(t, []string{"name", "author", "license", "version", "url"}, fields)
	assert.Contains(t, verrs.Error(), "name: missing required attribute;")
}
