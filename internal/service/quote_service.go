package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelpro/quotes-service/internal/config"
	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/pricing"
	"github.com/travelpro/quotes-service/internal/registry"
)

// QuotationStore archives saved quotations outside the editing session. The
// session itself stays in memory; the store only mirrors explicit saves,
// duplicates and deletes, and seeds the collection at startup.
type QuotationStore interface {
	Upsert(ctx context.Context, q model.Quotation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Quotation, error)
}

type PDFGenerator interface {
	Generate(doc model.QuoteDocument) ([]byte, error)
}

type ExcelGenerator interface {
	Generate(doc model.QuoteDocument) ([]byte, error)
}

// QuoteService owns the editing session and layers the archive and document
// exports on top of it. Plain wizard mutations go straight to Session().
type QuoteService struct {
	session *registry.Registry
	store   QuotationStore
	pdf     PDFGenerator
	excel   ExcelGenerator
	quotes  config.QuotesConfig
	log     zerolog.Logger
}

func NewQuoteService(session *registry.Registry, store QuotationStore, pdf PDFGenerator, excel ExcelGenerator, cfg *config.Config, log zerolog.Logger) *QuoteService {
	return &QuoteService{
		session: session,
		store:   store,
		pdf:     pdf,
		excel:   excel,
		quotes:  cfg.Quotes,
		log:     log,
	}
}

// Session exposes the registry for the plain wizard mutations that need no
// orchestration.
func (s *QuoteService) Session() *registry.Registry {
	return s.session
}

// LoadArchive seeds the saved collection from the store. Called once at
// startup, before the service takes traffic.
func (s *QuoteService) LoadArchive(ctx context.Context) error {
	archived, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load quotation archive: %w", err)
	}
	s.session.Restore(archived)
	s.log.Info().Int("quotations", len(archived)).Msg("quotation archive loaded")
	return nil
}

// SaveQuotation upserts the current quotation into the saved collection and
// mirrors the snapshot into the archive. A nil result with nil error means
// there was nothing to save, the quiet-tolerance path rather than a failure.
func (s *QuoteService) SaveQuotation(ctx context.Context) (*model.Quotation, error) {
	saved, ok := s.session.SaveQuotation()
	if !ok {
		return nil, nil
	}
	if err := s.store.Upsert(ctx, saved); err != nil {
		s.log.Error().Err(err).Str("id", saved.Details.ID).Msg("quotation saved in session but not archived")
		return nil, fmt.Errorf("archive quotation %s: %w", saved.Details.ID, err)
	}
	return &saved, nil
}

// DuplicateQuotation copies a saved entry under a fresh id and archives the
// copy. An unknown id is ErrNotFound.
func (s *QuoteService) DuplicateQuotation(ctx context.Context, id string) (*model.Quotation, error) {
	dup, ok := s.session.DuplicateQuotation(id)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.store.Upsert(ctx, dup); err != nil {
		s.log.Error().Err(err).Str("id", dup.Details.ID).Msg("duplicate kept in session but not archived")
		return nil, fmt.Errorf("archive duplicated quotation %s: %w", dup.Details.ID, err)
	}
	return &dup, nil
}

// DeleteQuotation removes a saved entry from the session and the archive. An
// unknown id is ErrNotFound.
func (s *QuoteService) DeleteQuotation(ctx context.Context, id string) error {
	if !s.session.DeleteQuotation(id) {
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("quotation removed from session but still archived")
		return fmt.Errorf("delete archived quotation %s: %w", id, err)
	}
	return nil
}

// Totals computes the cost breakdown of the current quotation; the zero-state
// breakdown when nothing is being edited.
func (s *QuoteService) Totals() model.Totals {
	return pricing.CalculateTotals(s.session.CurrentQuotation())
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportPDF renders the current quotation as a printable document. Unlike an
// edit, an export owes the caller a result, so a missing current quotation is
// an error here.
func (s *QuoteService) ExportPDF() (*ExportResult, error) {
	doc, err := s.buildDocument()
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*doc)
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return &ExportResult{
		FileName: s.buildFileName(doc, "pdf"),
		Content:  content,
	}, nil
}

// ExportExcel renders the current quotation as a workbook.
func (s *QuoteService) ExportExcel() (*ExportResult, error) {
	doc, err := s.buildDocument()
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*doc)
	if err != nil {
		return nil, fmt.Errorf("generate quote workbook: %w", err)
	}
	return &ExportResult{
		FileName: s.buildFileName(doc, "xlsx"),
		Content:  content,
	}, nil
}

func (s *QuoteService) buildDocument() (*model.QuoteDocument, error) {
	current := s.session.CurrentQuotation()
	if current == nil {
		return nil, ErrNoCurrentQuotation
	}
	return &model.QuoteDocument{
		Quotation:   *current,
		Totals:      pricing.CalculateTotals(current),
		CompanyName: s.quotes.CompanyName,
		Currency:    s.quotes.Currency,
		Terms: model.QuoteTerms{
			ValidityDays:      s.quotes.ValidityDays,
			DepositPercent:    s.quotes.DepositPercent,
			PaymentDaysBefore: s.quotes.PaymentDaysBefore,
		},
		GeneratedAt: time.Now(),
	}, nil
}

func (s *QuoteService) buildFileName(doc *model.QuoteDocument, ext string) string {
	customer := sanitizeFileName(doc.Quotation.Details.CustomerName)
	if customer == "" {
		customer = doc.Quotation.Details.ID
	}
	return fmt.Sprintf("quote-%s-%s.%s", customer, doc.GeneratedAt.Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
