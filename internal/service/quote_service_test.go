package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelpro/quotes-service/internal/config"
	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/registry"
	"github.com/travelpro/quotes-service/internal/service"
	"github.com/travelpro/quotes-service/internal/store"
)

// mockStore is a function-field test double for service.QuotationStore;
// set only the methods a test needs.
type mockStore struct {
	upsert func(ctx context.Context, q model.Quotation) error
	delete func(ctx context.Context, id string) error
	list   func(ctx context.Context) ([]model.Quotation, error)
}

func (m *mockStore) Upsert(ctx context.Context, q model.Quotation) error { return m.upsert(ctx, q) }
func (m *mockStore) Delete(ctx context.Context, id string) error         { return m.delete(ctx, id) }
func (m *mockStore) List(ctx context.Context) ([]model.Quotation, error) { return m.list(ctx) }

var _ service.QuotationStore = (*mockStore)(nil)

type stubGenerator struct {
	content []byte
	err     error
	lastDoc *model.QuoteDocument
}

func (s *stubGenerator) Generate(doc model.QuoteDocument) ([]byte, error) {
	s.lastDoc = &doc
	return s.content, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Quotes: config.QuotesConfig{
			CompanyName:       "TravelPro Agency",
			Currency:          "USD",
			ValidityDays:      14,
			DepositPercent:    25,
			PaymentDaysBefore: 30,
		},
	}
}

func newService(t *testing.T, st service.QuotationStore) (*service.QuoteService, *stubGenerator, *stubGenerator) {
	t.Helper()
	pdfGen := &stubGenerator{content: []byte("%PDF")}
	excelGen := &stubGenerator{content: []byte("PK")}
	svc := service.NewQuoteService(registry.New(), st, pdfGen, excelGen, testConfig(), zerolog.Nop())
	return svc, pdfGen, excelGen
}

func startQuotation(svc *service.QuoteService, customer string) model.Quotation {
	return svc.Session().CreateNewQuotation(registry.NewQuotationInput{
		CustomerName:      customer,
		NumberOfTravelers: 2,
		StartDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TravelLocations:   "Lisbon",
	})
}

func TestSaveQuotation_MirrorsIntoStore(t *testing.T) {
	var archived []model.Quotation
	st := &mockStore{
		upsert: func(_ context.Context, q model.Quotation) error {
			archived = append(archived, q)
			return nil
		},
	}
	svc, _, _ := newService(t, st)
	startQuotation(svc, "Alex Rivera")

	saved, err := svc.SaveQuotation(context.Background())

	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Len(t, archived, 1)
	assert.Equal(t, saved.Details.ID, archived[0].Details.ID)
}

func TestSaveQuotation_NothingToSave(t *testing.T) {
	st := &mockStore{
		upsert: func(_ context.Context, _ model.Quotation) error {
			t.Fatal("store must not be touched when there is nothing to save")
			return nil
		},
	}
	svc, _, _ := newService(t, st)

	saved, err := svc.SaveQuotation(context.Background())

	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestSaveQuotation_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection lost")
	st := &mockStore{
		upsert: func(_ context.Context, _ model.Quotation) error { return storeErr },
	}
	svc, _, _ := newService(t, st)
	startQuotation(svc, "Alex Rivera")

	_, err := svc.SaveQuotation(context.Background())

	assert.ErrorIs(t, err, storeErr)
	// the in-session save still happened
	assert.Len(t, svc.Session().Quotations(), 1)
}

func TestDuplicateQuotation(t *testing.T) {
	svc, _, _ := newService(t, store.NewMemory())
	q := startQuotation(svc, "Alex Rivera")
	_, err := svc.SaveQuotation(context.Background())
	require.NoError(t, err)

	dup, err := svc.DuplicateQuotation(context.Background(), q.Details.ID)

	require.NoError(t, err)
	require.NotNil(t, dup)
	assert.Equal(t, "Alex Rivera (Copy)", dup.Details.CustomerName)

	missing, err := svc.DuplicateQuotation(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, missing)
}

func TestDuplicateQuotation_ArchiveFailure(t *testing.T) {
	storeErr := errors.New("connection lost")
	calls := 0
	st := &mockStore{
		upsert: func(_ context.Context, _ model.Quotation) error {
			calls++
			if calls > 1 {
				return storeErr
			}
			return nil
		},
	}
	svc, _, _ := newService(t, st)
	q := startQuotation(svc, "Alex Rivera")
	_, err := svc.SaveQuotation(context.Background())
	require.NoError(t, err)

	_, err = svc.DuplicateQuotation(context.Background(), q.Details.ID)

	assert.ErrorIs(t, err, storeErr)
	// the copy stays in the session even though archiving failed
	assert.Len(t, svc.Session().Quotations(), 2)
}

func TestDeleteQuotation(t *testing.T) {
	mem := store.NewMemory()
	svc, _, _ := newService(t, mem)
	q := startQuotation(svc, "Alex Rivera")
	_, err := svc.SaveQuotation(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuotation(context.Background(), q.Details.ID))

	archived, err := mem.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, archived)

	assert.ErrorIs(t, svc.DeleteQuotation(context.Background(), q.Details.ID), service.ErrNotFound)
}

func TestLoadArchive(t *testing.T) {
	mem := store.NewMemory()
	seed, _, _ := newService(t, mem)
	startQuotation(seed, "Archived Customer")
	_, err := seed.SaveQuotation(context.Background())
	require.NoError(t, err)

	svc, _, _ := newService(t, mem)
	require.NoError(t, svc.LoadArchive(context.Background()))

	list := svc.Session().Quotations()
	require.Len(t, list, 1)
	assert.Equal(t, "Archived Customer", list[0].Details.CustomerName)
}

func TestTotals_ZeroStateWithoutCurrent(t *testing.T) {
	svc, _, _ := newService(t, store.NewMemory())

	assert.Equal(t, model.Totals{}, svc.Totals())
}

func TestExportPDF(t *testing.T) {
	svc, pdfGen, _ := newService(t, store.NewMemory())
	startQuotation(svc, "Alex Rivera")
	svc.Session().AddTransport(model.Transport{From: "A", To: "B", Mode: model.TransportPlane, CostPerTraveler: 100})

	result, err := svc.ExportPDF()

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), result.Content)
	assert.Regexp(t, `^quote-Alex-Rivera-\d{8}\.pdf$`, result.FileName)

	require.NotNil(t, pdfGen.lastDoc)
	assert.Equal(t, "TravelPro Agency", pdfGen.lastDoc.CompanyName)
	assert.Equal(t, 200.0, pdfGen.lastDoc.Totals.TransportTotal)
	assert.Equal(t, 14, pdfGen.lastDoc.Terms.ValidityDays)
}

func TestExportExcel_FileName(t *testing.T) {
	svc, _, excelGen := newService(t, store.NewMemory())
	startQuotation(svc, "Müller & Co")

	result, err := svc.ExportExcel()

	require.NoError(t, err)
	require.NotNil(t, excelGen.lastDoc)
	// non-ascii characters collapse into dashes
	assert.Regexp(t, `^quote-M-ller---Co-\d{8}\.xlsx$`, result.FileName)
}

func TestExport_NoCurrentQuotation(t *testing.T) {
	svc, _, _ := newService(t, store.NewMemory())

	_, err := svc.ExportPDF()
	assert.ErrorIs(t, err, service.ErrNoCurrentQuotation)

	_, err = svc.ExportExcel()
	assert.ErrorIs(t, err, service.ErrNoCurrentQuotation)
}
