package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *PostForm {
	return &PostForm{
		Type:        "lost",
		ItemName:    "Keys",
		Description: "Car keys",
		Location:    "Library",
		Contact:     "555-1234",
	}
}

func TestValidatePostFormOK(t *testing.T) {
	assert.Empty(t, validatePostForm(validForm()))
}

func TestValidatePostFormRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PostForm)
		wantError string
	}{
		{"missing type", func(f *PostForm) { f.Type = "" }, "Type is required."},
		{"whitespace type", func(f *PostForm) { f.Type = "   " }, "Type is required."},
		{"missing item name", func(f *PostForm) { f.ItemName = "" }, "Item name is required."},
		{"missing description", func(f *PostForm) { f.Description = "\t\n" }, "Description is required."},
		{"missing location", func(f *PostForm) { f.Location = "" }, "Location is required."},
		{"missing contact", func(f *PostForm) { f.Contact = " " }, "Contact info is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)
			errs := validatePostForm(form)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantError, errs[0])
		})
	}
}

func TestValidatePostFormAllViolationsCollected(t *testing.T) {
	errs := validatePostForm(&PostForm{})
	assert.Len(t, errs, 5)
}

func TestValidatePostFormType(t *testing.T) {
	form := validForm()
	form.Type = "stolen"
	errs := validatePostForm(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "Type must be either Lost or Found.", errs[0])

	for _, ok := range []string{"lost", "found"} {
		form.Type = ok
		assert.Empty(t, validatePostForm(form), "type %q", ok)
	}
}

func TestValidatePostFormMaxLengths(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PostForm, string)
		maxLen    int
		wantError string
	}{
		{"item name", func(f *PostForm, v string) { f.ItemName = v }, 120, "Item name must be 120 characters or fewer."},
		{"description", func(f *PostForm, v string) { f.Description = v }, 1000, "Description must be 1000 characters or fewer."},
		{"location", func(f *PostForm, v string) { f.Location = v }, 120, "Location must be 120 characters or fewer."},
		{"contact", func(f *PostForm, v string) { f.Contact = v }, 120, "Contact info must be 120 characters or fewer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Exactly at the limit passes.
			form := validForm()
			tt.mutate(form, strings.Repeat("x", tt.maxLen))
			assert.Empty(t, validatePostForm(form))

			// One past the limit fails.
			form = validForm()
			tt.mutate(form, strings.Repeat("x", tt.maxLen+1))
			errs := validatePostForm(form)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantError, errs[0])

			// Surrounding whitespace does not count against the limit.
			form = validForm()
			tt.mutate(form, "  "+strings.Repeat("x", tt.maxLen)+"  ")
			assert.Empty(t, validatePostForm(form))

			// Limits count characters, not bytes: a multibyte value at the
			// limit passes even though its byte length is twice the limit.
			form = validForm()
			tt.mutate(form, strings.Repeat("ы", tt.maxLen))
			assert.Empty(t, validatePostForm(form))

			form = validForm()
			tt.mutate(form, strings.Repeat("ы", tt.maxLen+1))
			errs = validatePostForm(form)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantError, errs[0])
		})
	}
}

func TestValidatePostFormFile(t *testing.T) {
	tests := []struct {
		name      string
		file      *FormFile
		wantError string
	}{
		{"no file", nil, ""},
		{"empty filename treated as no image", &FormFile{Name: "", Size: 100}, ""},
		{"jpg ok", &FormFile{Name: "photo.jpg", Size: 1024}, ""},
		{"uppercase ext ok", &FormFile{Name: "photo.PNG", Size: 1024}, ""},
		{"webp ok", &FormFile{Name: "photo.webp", Size: 3 * 1024 * 1024}, ""},
		{"gif rejected", &FormFile{Name: "photo.gif", Size: 10}, "Photo must be a jpg, png, or webp file."},
		{"no extension rejected", &FormFile{Name: "photo", Size: 10}, "Photo must be a jpg, png, or webp file."},
		{"bad ext wins over size", &FormFile{Name: "huge.pdf", Size: 50 * 1024 * 1024}, "Photo must be a jpg, png, or webp file."},
		{"exactly 5 MiB ok", &FormFile{Name: "photo.jpeg", Size: 5 * 1024 * 1024}, ""},
		{"over 5 MiB rejected", &FormFile{Name: "photo.jpeg", Size: 5*1024*1024 + 1}, "Photo must be 5 MB or smaller."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.File = tt.file
			errs := validatePostForm(form)
			if tt.wantError == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantError, errs[0])
		})
	}
}
