package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSectionFormat(t *testing.T) {
	cases := []struct {
		section string
		valid   bool
	}{
		{"63_G", true},
		{"123_A", true},
		{"63G", false},   // нет подчеркивания
		{"9_A", false},   // batch должен быть из 2-3 цифр
		{"63_g", false},  // буква должна быть заглавной
		{"6345_A", false},
		{"63_AB", false},
		{"", false},
		{"_G", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidateSectionFormat(tc.section), "section %q", tc.section)
	}
}

func TestValidateExternalURL(t *testing.T) {
	assert.True(t, ValidateExternalURL("https://drive.google.com/file/d/abc123/view"))
	assert.True(t, ValidateExternalURL("https://www.youtube.com/watch?v=abc123"))
	assert.False(t, ValidateExternalURL("http://example.com/file"))
	assert.False(t, ValidateExternalURL("not a url"))
	assert.False(t, ValidateExternalURL(""))
}

func TestValidateStructSectionCode(t *testing.T) {
	type req struct {
		Section string `validate:"required,sectioncode"`
	}

	assert.Nil(t, ValidateStruct(&req{Section: "63_G"}))

	errs := ValidateStruct(&req{Section: "63G"})
	assert.NotNil(t, errs)
	assert.Contains(t, errs, "section")

	errs = ValidateStruct(&req{})
	assert.NotNil(t, errs)
	assert.Contains(t, errs, "section")
}

func TestValidateStructProgressBounds(t *testing.T) {
	type req struct {
		Progress *float64 `validate:"omitempty,gte=0,lte=100"`
	}

	valid := 42.5
	assert.Nil(t, ValidateStruct(&req{Progress: &valid}))

	zero := 0.0
	assert.Nil(t, ValidateStruct(&req{Progress: &zero}))

	full := 100.0
	assert.Nil(t, ValidateStruct(&req{Progress: &full}))

	// Значения вне [0,100] отклоняются, а не обрезаются
	negative := -1.0
	assert.NotNil(t, ValidateStruct(&req{Progress: &negative}))

	over := 100.5
	assert.NotNil(t, ValidateStruct(&req{Progress: &over}))
}
