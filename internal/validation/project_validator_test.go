package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidator_ValidateProjectForCreation(t *testing.T) {
	validator := NewProjectValidator()

	tests := []struct {
		name        string
		projectName string
		wantCleaned string
		wantErr     bool
	}{
		{
			name:        "should accept simple name",
			projectName: "Website",
			wantCleaned: "Website",
		},
		{
			name:        "should trim surrounding whitespace",
			projectName: "  Website Relaunch  ",
			wantCleaned: "Website Relaunch",
		},
		{
			name:        "should accept punctuation",
			projectName: "Client X (Phase 2)",
			wantCleaned: "Client X (Phase 2)",
		},
		{
			name:        "should reject empty name",
			projectName: "",
			wantErr:     true,
		},
		{
			name:        "should reject whitespace-only name",
			projectName: "   ",
			wantErr:     true,
		},
		{
			name:        "should reject overlong name",
			projectName: strings.Repeat("p", 300),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := validator.ValidateProjectForCreation(tt.projectName)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCleaned, cleaned)
			}
		})
	}
}

func TestProjectValidator_ValidateProjectNote(t *testing.T) {
	validator := NewProjectValidator()

	note, err := validator.ValidateProjectNote("  Deadline end of June  ")
	require.NoError(t, err)
	assert.Equal(t, "Deadline end of June", note)

	note, err = validator.ValidateProjectNote("   ")
	require.NoError(t, err)
	assert.Equal(t, "", note)

	_, err = validator.ValidateProjectNote(strings.Repeat("n", 1500))
	assert.Error(t, err)
}
