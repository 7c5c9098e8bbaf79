package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/intake"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

type stubQuotesRepo struct {
	create        func(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error)
	list          func(ctx context.Context) ([]entity.TransportQuote, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error
	count         func(ctx context.Context) (int, error)
	countByStatus func(ctx context.Context, status entity.Status) (int, error)
}

func (s *stubQuotesRepo) Create(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
	if s.create != nil {
		return s.create(ctx, quote)
	}
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) List(ctx context.Context) ([]entity.TransportQuote, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportQuote, error) {
	return nil, errors.New("not implemented")
}

func (s *stubQuotesRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, id, status, notes)
	}
	return errors.New("not implemented")
}

func (s *stubQuotesRepo) Count(ctx context.Context) (int, error) {
	if s.count != nil {
		return s.count(ctx)
	}
	return 0, errors.New("not implemented")
}

func (s *stubQuotesRepo) CountByStatus(ctx context.Context, status entity.Status) (int, error) {
	if s.countByStatus != nil {
		return s.countByStatus(ctx, status)
	}
	return 0, errors.New("not implemented")
}

type stubLineQuotesRepo struct {
	create func(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error)
}

func (s *stubLineQuotesRepo) Create(ctx context.Context, line intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error) {
	if s.create != nil {
		return s.create(ctx, line, quote)
	}
	return nil, errors.New("not implemented")
}

func (s *stubLineQuotesRepo) List(ctx context.Context, line intake.Line) ([]entity.LineQuote, error) {
	return nil, errors.New("not implemented")
}

type recordingNotifier struct {
	subjects []string
	err      error
}

func (n *recordingNotifier) NotifyNewLead(subject, body string) error {
	n.subjects = append(n.subjects, subject)
	return n.err
}

func validTransportRequest() dto.TransportQuoteRequest {
	return dto.TransportQuoteRequest{
		QuoteType:    "tnc",
		BusinessName: "Bay Area Charters LLC",
		ContactName:  "Dana Reyes",
		Email:        "dana@bayareacharters.com",
		Phone:        "(415) 555-0100",
	}
}

func TestSubmitTransportQuote(t *testing.T) {
	var stored *entity.TransportQuote
	repo := &stubQuotesRepo{
		create: func(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
			stored = quote
			copied := *quote
			copied.ID = uuid.New()
			copied.Status = entity.StatusNew
			copied.CreatedAt = time.Now()
			return &copied, nil
		},
	}
	notifier := &recordingNotifier{}
	svc := NewQuotesService(repo, &stubLineQuotesRepo{}, NewValidator("US"), notifier)

	quote, err := svc.SubmitTransportQuote(context.Background(), validTransportRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(quote.ReferenceNumber, "TRQ-") {
		t.Fatalf("unexpected reference number: %s", quote.ReferenceNumber)
	}
	if stored.Phone != "+14155550100" {
		t.Fatalf("expected normalized phone, got %s", stored.Phone)
	}
	if stored.DBA != nil {
		t.Fatalf("expected empty optional stored as nil")
	}
	if len(notifier.subjects) != 1 || !strings.Contains(notifier.subjects[0], "tnc") {
		t.Fatalf("expected notification, got %v", notifier.subjects)
	}
}

func TestSubmitTransportQuoteValidation(t *testing.T) {
	repo := &stubQuotesRepo{
		create: func(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
			t.Fatalf("create must not be called on validation failure")
			return nil, nil
		},
	}
	svc := NewQuotesService(repo, &stubLineQuotesRepo{}, NewValidator("US"), nil)

	tests := map[string]func(r *dto.TransportQuoteRequest){
		"unknown quote type": func(r *dto.TransportQuoteRequest) { r.QuoteType = "hovercraft" },
		"missing business":   func(r *dto.TransportQuoteRequest) { r.BusinessName = "" },
		"missing contact":    func(r *dto.TransportQuoteRequest) { r.ContactName = " " },
		"bad email":          func(r *dto.TransportQuoteRequest) { r.Email = "not-an-email" },
		"missing phone":      func(r *dto.TransportQuoteRequest) { r.Phone = "" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := validTransportRequest()
			mutate(&req)
			_, err := svc.SubmitTransportQuote(context.Background(), req)
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSubmitLineQuote(t *testing.T) {
	line, ok := intake.Lookup("captive")
	if !ok {
		t.Fatalf("captive line missing from registry")
	}

	var gotLine intake.Line
	var stored *entity.LineQuote
	lines := &stubLineQuotesRepo{
		create: func(ctx context.Context, l intake.Line, quote *entity.LineQuote) (*entity.LineQuote, error) {
			gotLine = l
			stored = quote
			copied := *quote
			copied.ID = uuid.New()
			copied.Line = l.Tag
			return &copied, nil
		},
	}
	svc := NewQuotesService(&stubQuotesRepo{}, lines, NewValidator("US"), nil)

	quote, err := svc.SubmitLineQuote(context.Background(), line, dto.LineQuoteRequest{
		BusinessName: "Golden Gate Shuttle",
		ContactName:  "Sam Ortiz",
		Email:        "sam@ggshuttle.com",
		Phone:        "+14155550123",
		Street:       "123 Mission St",
		City:         "San Francisco",
		State:        "CA",
		Zip:          "94105",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLine.Table != "captive_quotes" {
		t.Fatalf("expected captive table, got %s", gotLine.Table)
	}
	if !strings.HasPrefix(quote.ReferenceNumber, "CAP-") {
		t.Fatalf("unexpected reference number: %s", quote.ReferenceNumber)
	}
	// street/city/state/zip fold into one address column
	if stored.Address == nil || *stored.Address != "123 Mission St, San Francisco, CA, 94105" {
		t.Fatalf("unexpected address: %v", stored.Address)
	}
}

func TestQuotesUpdateStatus(t *testing.T) {
	var gotStatus entity.Status
	var gotNotes *string
	repo := &stubQuotesRepo{
		updateStatus: func(ctx context.Context, id uuid.UUID, status entity.Status, notes *string) error {
			gotStatus = status
			gotNotes = notes
			return nil
		},
	}
	svc := NewQuotesService(repo, &stubLineQuotesRepo{}, NewValidator("US"), nil)

	notes := "spoke with insured"
	if err := svc.UpdateStatus(context.Background(), uuid.NewString(), "quoted", &notes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != entity.StatusQuoted || gotNotes == nil || *gotNotes != notes {
		t.Fatalf("unexpected update: %v %v", gotStatus, gotNotes)
	}

	if err := svc.UpdateStatus(context.Background(), uuid.NewString(), "archived", nil); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), "not-a-uuid", "new", nil); !errors.Is(err, repository.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound for malformed id, got %v", err)
	}
}

func TestNotificationFailureDoesNotFailSubmission(t *testing.T) {
	repo := &stubQuotesRepo{
		create: func(ctx context.Context, quote *entity.TransportQuote) (*entity.TransportQuote, error) {
			return quote, nil
		},
	}
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := NewQuotesService(repo, &stubLineQuotesRepo{}, NewValidator("US"), notifier)

	if _, err := svc.SubmitTransportQuote(context.Background(), validTransportRequest()); err != nil {
		t.Fatalf("submission must succeed despite notification failure: %v", err)
	}
}
