// Package extract converts source material (uploaded PDF/DOCX files and
// rendered job-posting pages) into plain normalized text for the LLM
// pipeline.
package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Supported upload media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	xmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	spaceRunPattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunPattern = regexp.MustCompile(`\n+`)
)

// Document extracts plain text from an uploaded file buffer. The declared
// media type selects the decoder. An empty text layer yields an empty
// string, not an error; minimum-length enforcement is the caller's call
// since the viable threshold differs per task.
func Document(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return documentPDF(data)
	case MediaTypeDOCX:
		return documentDOCX(data)
	default:
		return "", &Error{
			Reason:  ReasonUnsupportedType,
			Message: fmt.Sprintf("only PDF and DOCX are allowed, got %q", mediaType),
		}
	}
}

// CheckMinLength fails with a typed extraction error when text is shorter
// than min characters. Near-empty text must not reach the model: LLM calls
// on junk input hallucinate plausible resumes instead of returning nothing.
func CheckMinLength(text string, min int) error {
	if len(strings.TrimSpace(text)) < min {
		return &Error{
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("got %d characters, need at least %d", len(strings.TrimSpace(text)), min),
		}
	}
	return nil
}

func documentPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Reason: ReasonUndecodable, Message: "failed to open PDF", Cause: err}
	}
	rs, err := reader.GetPlainText()
	if err != nil {
		return "", &Error{Reason: ReasonUndecodable, Message: "failed to read PDF text layer", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", &Error{Reason: ReasonUndecodable, Message: "failed to read PDF text layer", Cause: err}
	}
	return normalizeWhitespace(buf.String()), nil
}

// documentDOCX pulls word/document.xml out of the DOCX zip container and
// strips the markup. Paragraph closes become newlines so document order
// survives the tag removal.
func documentDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Reason: ReasonUndecodable, Message: "failed to open DOCX container", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &Error{Reason: ReasonUndecodable, Message: "failed to open document.xml", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", &Error{Reason: ReasonUndecodable, Message: "failed to read document.xml", Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &Error{Reason: ReasonUndecodable, Message: "no document.xml found in DOCX"}
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagPattern.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

// normalizeWhitespace collapses space runs and newline runs but keeps
// single newlines, preserving line structure for the prompt.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spaceRunPattern.ReplaceAllString(s, " ")
	s = newlineRunPattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
