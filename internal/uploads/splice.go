package uploads

import (
	"html"
	"newsroom/pkg/serrors"
	"regexp"
)

// placeholderRe matches an <img> tag standing in for an image that was still
// uploading when it was inserted into the editor.
var placeholderRe = regexp.MustCompile(`<img\b[^>]*?\bdata-upload-id\s*=\s*["']([^"']+)["'][^>]*>`)

// Lookup returns the status of an upload.
type Lookup interface {
	Get(id string) (Status, bool)
}

// Splice replaces upload placeholders in rich-text content. Finished uploads
// become plain image tags, failed or unknown ones are removed. Content with an
// upload still in flight is rejected with serrors.ErrConflict.
func Splice(content string, uploads Lookup) (string, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	out := make([]byte, 0, len(content))
	last := 0
	for _, m := range matches {
		id := content[m[2]:m[3]]
		s, ok := uploads.Get(id)
		if ok && !s.State.Finished() {
			return "", serrors.With(serrors.ErrConflict, "image upload still in progress")
		}

		out = append(out, content[last:m[0]]...)
		if ok && s.State == StateDone {
			out = append(out, `<img src="`...)
			out = append(out, html.EscapeString(s.URL)...)
			out = append(out, `" alt="">`...)
		}
		last = m[1]
	}
	out = append(out, content[last:]...)

	return string(out), nil
}

// PendingIDs lists the upload ids referenced by placeholders in content.
func PendingIDs(content string) []string {
	var ids []string
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		ids = append(ids, m[1])
	}

	return ids
}
