package server

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deibuilders/resume-analyzer/internal/ingestion"
	"github.com/deibuilders/resume-analyzer/internal/pipeline"
)

// maxUploadSize caps resume uploads at 8 MiB.
const maxUploadSize = 8 << 20

var unsafeNameRe = regexp.MustCompile(`[^\w.\-]`)

// handleUpload accepts a multipart resume upload, saves it, decodes it
// to text and runs the analysis pipeline. Decode failures degrade to an
// empty-text analysis rather than a hard error once the file itself was
// readable; the response always carries a usable analysis and
// recommendation list for accepted files.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "File too large. Max 8 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	log.Printf("upload received: name=%s type=%s size=%d", header.Filename, header.Header.Get("Content-Type"), header.Size)

	if !allowedUpload(header.Filename, header.Header.Get("Content-Type")) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. PDF, DOCX, HTML or plain text only.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	diskPath := filepath.Join(s.uploadDir, storedName(header.Filename))
	if err := os.WriteFile(diskPath, data, 0644); err != nil {
		log.Printf("failed to persist upload: %v", err)
	} else {
		log.Printf("saved upload to %s", diskPath)
	}

	text, err := ingestion.ExtractText(data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		// The pipeline tolerates empty text and still yields a
		// fully-populated default analysis.
		log.Printf("failed to extract text from %s: %v", header.Filename, err)
		text = ""
	}

	result := pipeline.Analyze(r.Context(), text, pipeline.Options{
		RemoteServiceURL: s.cfg.RemoteServiceURL,
		RemoteAPIKey:     s.cfg.RemoteAPIKey,
		RemoteModel:      s.cfg.RemoteModel,
		Timeout:          time.Duration(s.cfg.TimeoutMs) * time.Millisecond,
		MaxRetries:       s.cfg.MaxRetries,
	})

	s.jsonResponse(w, http.StatusOK, result)
}

// allowedUpload gates uploads to the formats the decoder understands.
func allowedUpload(name, mime string) bool {
	lower := strings.ToLower(name)
	switch {
	case mime == ingestion.MimePDF || strings.HasSuffix(lower, ".pdf"):
		return true
	case mime == ingestion.MimeDocx || strings.HasSuffix(lower, ".docx") || mime == "application/octet-stream":
		return true
	case strings.HasPrefix(mime, ingestion.MimeHTML) || strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm"):
		return true
	case strings.HasPrefix(mime, "text/plain") || strings.HasSuffix(lower, ".txt"):
		return true
	default:
		return false
	}
}

// storedName builds a collision-free on-disk name for an upload.
func storedName(original string) string {
	safe := unsafeNameRe.ReplaceAllString(strings.ReplaceAll(original, " ", "_"), "")
	if safe == "" {
		safe = "resume"
	}
	return uuid.NewString()[:8] + "-" + safe
}
