package services

import (
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFContent is the result of a successful extraction.
type PDFContent struct {
	Text          string
	PageCount     int
	FileSizeBytes int64
	FilePath      string
	Method        string
}

// ExtractionLimits bound what the parser accepts. Zero values fall
// back to the defaults below.
type ExtractionLimits struct {
	MaxFileSizeBytes int64
	MaxPages         int
	MaxTextChars     int
}

const (
	defaultMaxPDFBytes  = 5 * 1024 * 1024
	defaultMaxPDFPages  = 10
	defaultMaxTextChars = 50000
)

// PDFParserService extracts text from résumé PDFs. Failures carry an
// *ExtractionError with a stable code so batch processing can classify
// them without string matching.
type PDFParserService interface {
	ExtractText(filePath string) (*PDFContent, error)
}

type pdfParserService struct {
	limits ExtractionLimits
}

func NewPDFParserService(limits ExtractionLimits) PDFParserService {
	if limits.MaxFileSizeBytes <= 0 {
		limits.MaxFileSizeBytes = defaultMaxPDFBytes
	}
	if limits.MaxPages <= 0 {
		limits.MaxPages = defaultMaxPDFPages
	}
	if limits.MaxTextChars <= 0 {
		limits.MaxTextChars = defaultMaxTextChars
	}
	return &pdfParserService{limits: limits}
}

func (p *pdfParserService) ExtractText(filePath string) (*PDFContent, error) {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, NewExtractionError(CodeFileNotFound, "file does not exist: %s", filePath)
	}
	if err != nil {
		return nil, NewExtractionError(CodeProcessingError, "stat %s: %v", filePath, err)
	}

	if info.Size() > p.limits.MaxFileSizeBytes {
		return nil, NewExtractionError(CodePDFTooLarge,
			"file exceeds %.1fMB limit", float64(p.limits.MaxFileSizeBytes)/(1024*1024))
	}
	if info.Size() == 0 {
		return nil, NewExtractionError(CodePDFCorrupted, "file is empty: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, NewExtractionError(CodePDFCorrupted, "failed to open PDF: %v", err)
	}
	defer f.Close()

	totalPages := r.NumPage()
	if totalPages > p.limits.MaxPages {
		return nil, NewExtractionError(CodePDFTooManyPages,
			"PDF has %d pages, exceeds limit of %d", totalPages, p.limits.MaxPages)
	}

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page is not fatal.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, NewExtractionError(CodePDFNoText,
			"no extractable text found (may be a scanned image)")
	}

	if len(text) > p.limits.MaxTextChars {
		text = text[:p.limits.MaxTextChars]
	}

	return &PDFContent{
		Text:          text,
		PageCount:     totalPages,
		FileSizeBytes: info.Size(),
		FilePath:      filePath,
		Method:        "pdf",
	}, nil
}
