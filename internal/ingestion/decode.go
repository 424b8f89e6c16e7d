package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types handled by the decoder.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeHTML = "text/html"
)

// DecodeError reports a failure to extract text from an uploaded file.
type DecodeError struct {
	Name    string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error for %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error for %s: %s", e.Name, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ExtractText decodes an uploaded file into raw text. The format is
// resolved from the declared MIME type first, then the filename
// extension. Unknown formats fall back to a UTF-8 interpretation of the
// bytes, matching how plain-text resumes are handled.
func ExtractText(data []byte, name, declaredMime string) (string, error) {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)

	switch {
	case declaredMime == MimePDF || ext == ".pdf":
		return extractPDFText(data, name)
	case declaredMime == MimeDocx || ext == ".docx" || declaredMime == "application/octet-stream":
		return extractDocxText(data, name)
	case declaredMime == MimeHTML || ext == ".html" || ext == ".htm":
		return extractHTMLText(data, name)
	default:
		return string(data), nil
	}
}

func extractPDFText(data []byte, name string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Name: name, Message: "failed to read pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte, name string) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Name: name, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// extractHTMLText pulls visible text out of an HTML resume, dropping
// script/style noise and keeping per-element line structure so the
// section splitter still sees headings on their own lines.
func extractHTMLText(data []byte, name string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Name: name, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	var lines []string
	body.Find("h1, h2, h3, h4, p, li, div, span").Each(func(_ int, s *goquery.Selection) {
		// Leaf elements only; containers would duplicate their children's text.
		if s.Children().Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(body.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
