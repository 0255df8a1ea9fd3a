package pickups

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recellhq/recell-backend/internal/audit"
	"github.com/recellhq/recell-backend/internal/catalog"
	"github.com/recellhq/recell-backend/internal/valuation"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db"
	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/enums"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
	"github.com/recellhq/recell-backend/pkg/metrics"
	"github.com/recellhq/recell-backend/pkg/pagination"
)

const entityTable = "pickup_requests"

// Service exposes customer intake and admin pickup management.
type Service interface {
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
	Submit(ctx context.Context, input SubmitInput) (*RequestDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RequestDTO, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status enums.PickupStatus) (*RequestDTO, error)
}

// QuoteInput asks for a valuation without persisting anything. Either raw
// signals or a pre-classified tier must be present; signals win when both are.
type QuoteInput struct {
	VariantID   uuid.UUID
	AgeBracket  enums.AgeBracket
	Signals     *valuation.ConditionSignals
	Tier        *enums.ConditionTier
	Accessories valuation.Accessories
}

// QuoteResult is the valuation breakdown plus the tier it was computed with.
type QuoteResult struct {
	Tier      enums.ConditionTier `json:"condition_tier"`
	Breakdown valuation.Result    `json:"breakdown"`
}

// SubmitInput is a complete customer pickup submission.
type SubmitInput struct {
	QuoteInput

	CustomerName  string
	Phone         string
	Address       string
	City          string
	PreferredDate *time.Time
}

// ListInput holds admin listing parameters.
type ListInput struct {
	Filter     ListFilter
	Pagination pagination.Params
}

// ListResult is one page of pickup requests.
type ListResult struct {
	Requests   []RequestDTO `json:"requests"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// service implements the pickups service.
type service struct {
	repo       Repository
	catalogSvc catalog.Service
	auditSvc   audit.Service
	dbClient   *db.Client
	cfg        config.IntakeConfig
	logg       *logger.Logger
	metrics    *metrics.ValuationMetrics
}

// NewService constructs a pickups service instance. Metrics may be nil.
func NewService(
	repo Repository,
	catalogSvc catalog.Service,
	auditSvc audit.Service,
	dbClient *db.Client,
	cfg config.IntakeConfig,
	logg *logger.Logger,
	valuationMetrics *metrics.ValuationMetrics,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pickup repository required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if auditSvc == nil {
		return nil, fmt.Errorf("audit service required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:       repo,
		catalogSvc: catalogSvc,
		auditSvc:   auditSvc,
		dbClient:   dbClient,
		cfg:        cfg,
		logg:       logg,
		metrics:    valuationMetrics,
	}, nil
}

// Quote resolves pricing and runs the valuation without any writes.
func (s *service) Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	tier, err := resolveTier(input.Signals, input.Tier)
	if err != nil {
		return nil, err
	}
	if !input.AgeBracket.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid age bracket").
			WithDetails(map[string]string{"age_bracket": "must be one of 0_3, 3_6, 6_11, 12_plus"})
	}

	resolveCtx, cancel := withTimeout(ctx, s.cfg.ResolveTimeout)
	defer cancel()

	params, err := s.catalogSvc.ResolvePricing(resolveCtx, input.VariantID)
	if err != nil {
		return nil, err
	}

	result := valuation.ComputeFinalPrice(*params, input.AgeBracket, tier, input.Accessories)
	s.metrics.ObserveQuote(tier.String(), input.AgeBracket.String(), result.FinalPrice)

	return &QuoteResult{Tier: tier, Breakdown: result}, nil
}

// Submit computes a valuation and freezes the full breakdown onto an immutable
// pickup request. The stored price is never recomputed afterwards.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*RequestDTO, error) {
	if details := validateSubmit(input); len(details) > 0 {
		s.metrics.IncSubmission("rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pickup submission").WithDetails(details)
	}

	quote, err := s.Quote(ctx, input.QuoteInput)
	if err != nil {
		s.metrics.IncSubmission("rejected")
		return nil, err
	}

	request := &models.PickupRequest{
		VariantID:     input.VariantID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       strings.TrimSpace(input.Address),
		City:          strings.TrimSpace(input.City),
		PreferredDate: input.PreferredDate,

		AgeBracket:    input.AgeBracket,
		ConditionTier: quote.Tier,

		HasCharger: input.Accessories.HasCharger,
		HasBox:     input.Accessories.HasBox,
		HasBill:    input.Accessories.HasBill,

		AgeAdjustedPrice:   quote.Breakdown.AgeAdjustedPrice,
		ConditionDeduction: quote.Breakdown.ConditionDeduction,
		AccessoryDeduction: quote.Breakdown.AccessoryDeduction,
		FinalPrice:         quote.Breakdown.FinalPrice,

		Status: enums.PickupStatusPending,
	}
	if input.Signals != nil {
		signals, err := json.Marshal(input.Signals)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal condition signals")
		}
		request.ConditionSignals = signals
	}

	persistCtx, cancel := withTimeout(ctx, s.cfg.PersistTimeout)
	defer cancel()

	if err := s.dbClient.WithTx(persistCtx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(persistCtx, request); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert pickup request")
		}
		if _, err := s.auditSvc.WithTx(tx).Record(persistCtx, audit.RecordInput{
			Action:      enums.AuditActionCreate,
			EntityTable: entityTable,
			EntityID:    request.ID.String(),
			After:       mustStatusSnapshot(request.Status),
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: write audit record")
		}
		return nil
	}); err != nil {
		s.metrics.IncSubmission("failed")
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist pickup request")
	}

	s.metrics.IncSubmission("accepted")
	ctx = s.logg.WithPickupID(ctx, request.ID.String())
	s.logg.Info(ctx, "pickup request accepted")

	return NewRequestDTO(request), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*RequestDTO, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load pickup request")
	}
	return NewRequestDTO(request), nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(input.Pagination.Limit)

	rows, err := s.repo.List(ctx, input.Filter, limit+1, cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list pickup requests")
	}

	result := &ListResult{Requests: make([]RequestDTO, 0, len(rows))}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		result.NextCursor = &next
	}
	for i := range rows {
		result.Requests = append(result.Requests, *NewRequestDTO(&rows[i]))
	}
	return result, nil
}

// UpdateStatus applies a lifecycle transition and audits it atomically.
func (s *service) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status enums.PickupStatus) (*RequestDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pickup status").
			WithDetails(map[string]string{"status": "must be one of pending, confirmed, picked_up, cancelled"})
	}

	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load pickup request")
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("cannot transition pickup from %s to %s", request.Status, status))
	}

	previous := request.Status
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdateStatus(ctx, id, status); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update pickup status")
		}
		actor := actorID
		if _, err := s.auditSvc.WithTx(tx).Record(ctx, audit.RecordInput{
			ActorID:     &actor,
			Action:      enums.AuditActionStatusChange,
			EntityTable: entityTable,
			EntityID:    id.String(),
			Before:      mustStatusSnapshot(previous),
			After:       mustStatusSnapshot(status),
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: write audit record")
		}
		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update pickup status")
	}

	request.Status = status
	return NewRequestDTO(request), nil
}

// resolveTier prefers raw signals over a pre-classified tier.
func resolveTier(signals *valuation.ConditionSignals, tier *enums.ConditionTier) (enums.ConditionTier, error) {
	if signals != nil {
		return valuation.Classify(*signals), nil
	}
	if tier != nil {
		if !tier.IsValid() {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid condition tier").
				WithDetails(map[string]string{"condition_tier": "must be one of good, average, below_average"})
		}
		return *tier, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "condition is required").
		WithDetails(map[string]string{"condition": "provide condition_signals or condition_tier"})
}

func validateSubmit(input SubmitInput) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(input.CustomerName) == "" {
		details["customer_name"] = "is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		details["phone"] = "is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		details["address"] = "is required"
	}
	if strings.TrimSpace(input.City) == "" {
		details["city"] = "is required"
	}
	return details
}

// withTimeout tolerates an unset duration so tests can run without config.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func mustStatusSnapshot(status enums.PickupStatus) json.RawMessage {
	snapshot, _ := json.Marshal(map[string]string{"status": status.String()})
	return snapshot
}
