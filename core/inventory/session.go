package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/checkout"
	"github.com/goto/assetkeeper/core/search"
	"github.com/goto/assetkeeper/core/view"
	"github.com/goto/assetkeeper/pkg/statsd"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Option func(*Session)

// WithClock sets the source of today's date.
func WithClock(today func() asset.Date) Option {
	return func(s *Session) {
		s.today = today
	}
}

// WithLoanPeriod sets the loan period and extension length in days.
func WithLoanPeriod(days int) Option {
	return func(s *Session) {
		if days > 0 {
			s.loanPeriod = days
		}
	}
}

func WithFilter(f search.Filter) Option {
	return func(s *Session) {
		s.filter = f
	}
}

func WithStatsD(sd *statsd.Reporter) Option {
	return func(s *Session) {
		s.statsd = sd
	}
}

// Session is one actor's working copy of the inventory: a registry, its two
// views and a checkout coordinator over a shared store. A Session is not safe
// for concurrent use.
type Session struct {
	id         string
	repo       asset.Repository
	logger     log.Logger
	statsd     *statsd.Reporter
	today      func() asset.Date
	loanPeriod int
	filter     search.Filter

	reg         *asset.Registry
	views       *view.Index
	coordinator *checkout.Coordinator
	history     []Event

	tracer    trace.Tracer
	opCounter metric.Int64Counter
}

func NewSession(repo asset.Repository, logger log.Logger, opts ...Option) *Session {
	opCounter, err := otel.Meter("github.com/goto/assetkeeper/core/inventory").
		Int64Counter("assetkeeper.inventory.operation")
	if err != nil {
		otel.Handle(err)
	}

	s := &Session{
		id:         uuid.NewString(),
		repo:       repo,
		logger:     logger,
		today:      asset.Today,
		loanPeriod: asset.LoanPeriodDays,
		filter:     search.Filter{Fields: search.DefaultFields, Hint: search.DefaultHint},
		reg:        asset.NewRegistry(),
		tracer:     otel.Tracer("github.com/goto/assetkeeper/core/inventory"),
		opCounter:  opCounter,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.views = view.New(s.reg, s.filter, view.WithClock(s.today))
	s.coordinator = checkout.NewCoordinator(repo, logger,
		checkout.WithClock(s.today),
		checkout.WithLoanPeriod(s.loanPeriod),
		checkout.WithStatsD(s.statsd),
	)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Load replaces the registry with the store's contents. Records with
// unparsable values are still loaded; they are reported together in the
// returned error, which then only holds CorruptRecordErrors.
func (s *Session) Load(ctx context.Context) (err error) {
	ctx, span := s.start(ctx, "load")
	defer func() { s.finish(ctx, span, "load", "", err) }()

	corrupt, err := s.reload(ctx, false)
	if err != nil {
		return err
	}
	return corrupt
}

// Search narrows the inventory view to records matching query.
func (s *Session) Search(query string) {
	s.views.SetFilter(query)
}

func (s *Session) Query() string {
	return s.views.Query()
}

// ToggleCart adds an available record to the cart or takes a cart record out
// of it.
func (s *Session) ToggleCart(h asset.Handle) (asset.State, error) {
	return s.views.ToggleCart(h)
}

func (s *Session) Sort(kind view.Kind, column asset.Field, descending bool) error {
	return s.views.SortBy(kind, column, descending)
}

func (s *Session) Rows(kind view.Kind) []view.Row {
	return s.views.Rows(kind)
}

// Lookup returns a current handle for the asset with the given id.
func (s *Session) Lookup(id string) (asset.Handle, error) {
	return s.reg.Lookup(id)
}

// Get returns the record a handle points at.
func (s *Session) Get(h asset.Handle) (asset.Record, error) {
	return s.reg.Get(h)
}

// Checkout reserves every cart item for borrower.
func (s *Session) Checkout(ctx context.Context, borrower checkout.Borrower, comment string) (res checkout.Result, err error) {
	ctx, span := s.start(ctx, "checkout")
	defer func() { s.finish(ctx, span, "checkout", strings.Join(res.CheckedOut, ","), err) }()

	res, err = s.coordinator.Checkout(ctx, workspace{s}, borrower, comment)
	if len(res.CheckedOut) > 0 {
		s.record("checkout", res.CheckedOut, res.Message())
	}
	for _, c := range res.Conflicts {
		s.record("checkout", []string{c.ID}, c.Err().Error())
	}
	return res, err
}

// reload refreshes the registry wholesale from the store and recomputes both
// views. Active sorts survive only when keepSort is set. Corrupt records are
// returned separately from the store error.
func (s *Session) reload(ctx context.Context, keepSort bool) (corrupt error, err error) {
	listings, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, asset.StoreUnavailableError{Op: "list assets", Err: err}
	}

	records := make([]asset.Record, 0, len(listings))
	var errs []error
	for _, l := range listings {
		rec, err := asset.Decode(l)
		if err != nil {
			s.logger.Warn("corrupt record", "asset_id", l.Asset.ID, "err", err)
			errs = append(errs, err)
		}
		records = append(records, rec)
	}

	s.reg.Replace(records)
	if keepSort {
		s.views.Refresh()
	} else {
		s.views.Rebuild()
	}
	return errors.Join(errs...), nil
}

// commit runs a store write for op. A failed write leaves memory untouched.
// After a successful one apply mirrors it locally and the registry is then
// reloaded from the store.
func (s *Session) commit(ctx context.Context, op, assetID string, keepSort bool, write func() error, apply func()) error {
	if err := write(); err != nil {
		return asset.WrapStoreError(op, assetID, err)
	}
	if apply != nil {
		apply()
	}
	if _, err := s.reload(ctx, keepSort); err != nil {
		return err
	}
	return nil
}

// start opens the span of op. finish ends it and counts the operation.
func (s *Session) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "inventory."+op, trace.WithAttributes(
		attribute.String("assetkeeper.session", s.id),
	))
}

func (s *Session) finish(ctx context.Context, span trace.Span, op, assetID string, err error) {
	if assetID != "" {
		span.SetAttributes(attribute.String("asset.identifier", assetID))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if s.opCounter == nil {
		return
	}
	s.opCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("assetkeeper.operation", op),
		attribute.String("asset.identifier", assetID),
		attribute.Bool("operation.success", err == nil),
	))
	s.statsd.Incr("operation").Tag("op", op).Tag("success", boolTag(err == nil)).Publish()
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// workspace exposes the session's cart to the checkout coordinator.
type workspace struct {
	s *Session
}

func (w workspace) CartRecords() []asset.Record {
	return w.s.views.CartRecords()
}

func (w workspace) Uncart(id string) error {
	return w.s.views.Uncart(id)
}

func (w workspace) Settle(id string) error {
	return w.s.views.Settle(id)
}

func (w workspace) ClearCart() {
	w.s.views.ClearCart()
}

func (w workspace) Reload(ctx context.Context) error {
	_, err := w.s.reload(ctx, true)
	return err
}
