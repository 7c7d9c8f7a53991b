package web

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vbonduro/lostfound/internal/photostore"
)

// maxUploadBytes caps an attached photo and, via MaxBytesReader, the whole
// request body. Fixed at 5 MiB.
const maxUploadBytes = 5 * 1024 * 1024

// allowedExtensions is the fixed set of accepted photo extensions.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// FormFile describes an uploaded file as seen by validation: its original
// name and byte length. The bytes themselves are read once per request and
// shared between validation and upload.
type FormFile struct {
	Name string
	Size int64
}

// PostForm holds raw submitted values, echoed back to the template when
// validation fails.
type PostForm struct {
	Type        string
	ItemName    string
	Description string
	Location    string
	Contact     string
	File        *FormFile
}

type fieldRule struct {
	value  string
	label  string
	maxLen int
}

// rules returns the required fields in display order with their labels and
// length limits.
func (f *PostForm) rules() []fieldRule {
	return []fieldRule{
		{f.Type, "Type", 0},
		{f.ItemName, "Item name", 120},
		{f.Description, "Description", 1000},
		{f.Location, "Location", 120},
		{f.Contact, "Contact info", 120},
	}
}

// validatePostForm checks every rule and collects all violations; an empty
// result means the submission is acceptable. A file with an empty name
// counts as "no image".
func validatePostForm(form *PostForm) []string {
	var errors []string

	for _, r := range form.rules() {
		trimmed := strings.TrimSpace(r.value)
		if trimmed == "" {
			errors = append(errors, r.label+" is required.")
			continue
		}
		if r.maxLen > 0 && utf8.RuneCountInString(trimmed) > r.maxLen {
			errors = append(errors, fmt.Sprintf("%s must be %d characters or fewer.", r.label, r.maxLen))
		}
	}

	if strings.TrimSpace(form.Type) != "" && form.Type != "lost" && form.Type != "found" {
		errors = append(errors, "Type must be either Lost or Found.")
	}

	if form.File != nil && form.File.Name != "" {
		if !allowedExtensions[photostore.Ext(form.File.Name)] {
			errors = append(errors, "Photo must be a jpg, png, or webp file.")
		} else if form.File.Size > maxUploadBytes {
			errors = append(errors, "Photo must be 5 MB or smaller.")
		}
	}

	return errors
}
