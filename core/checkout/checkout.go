package checkout

//go:generate mockery --name=Workspace -r --case underscore --with-expecter --structname Workspace --filename workspace.go --output=./mocks
import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/validator"
	"github.com/goto/assetkeeper/pkg/statsd"
	"github.com/goto/salt/log"
)

// Workspace is the actor-local side of a checkout: its cart and registry.
type Workspace interface {
	CartRecords() []asset.Record
	// Uncart returns a conflicting cart item to Available.
	Uncart(id string) error
	// Settle marks a committed cart item as Requested and removes it from
	// the cart.
	Settle(id string) error
	ClearCart()
	Reload(ctx context.Context) error
}

// Borrower identifies who checks the cart out.
type Borrower struct {
	FirstName string `json:"first_name" yaml:"first_name" mapstructure:"first_name" validate:"required"`
	LastName  string `json:"last_name" yaml:"last_name" mapstructure:"last_name" validate:"required"`
	Email     string `json:"email" yaml:"email" mapstructure:"email" validate:"required,email"`
}

// Name is the full name stored on the loan row.
func (b Borrower) Name() string {
	return strings.TrimSpace(b.FirstName) + " " + strings.TrimSpace(b.LastName)
}

// Conflict is a cart item that could not be reserved. Deleted is set when
// the asset no longer exists in the store.
type Conflict struct {
	ID      string
	Name    string
	Deleted bool
}

func (c Conflict) Err() error {
	return asset.ConflictError{AssetID: c.ID, Name: c.Name, Deleted: c.Deleted}
}

type Result struct {
	CheckedOut []string
	Conflicts  []Conflict
}

// Message is the status line reported after a checkout.
func (r Result) Message() string {
	n := len(r.CheckedOut)
	if n == 1 {
		return "1 item was checked out"
	}
	return fmt.Sprintf("%d items were checked out", n)
}

type Option func(*Coordinator)

func WithStatsD(sd *statsd.Reporter) Option {
	return func(c *Coordinator) {
		c.statsd = sd
	}
}

// WithClock sets the source of the request date.
func WithClock(today func() asset.Date) Option {
	return func(c *Coordinator) {
		c.today = today
	}
}

// WithLoanPeriod sets the number of days between request and due date.
func WithLoanPeriod(days int) Option {
	return func(c *Coordinator) {
		if days > 0 {
			c.loanPeriod = days
		}
	}
}

// Coordinator reconciles a cart against the store. It holds no lock between
// looking up an active loan and inserting one; a loan inserted by another
// actor in between surfaces as a duplicate key and is reported as a conflict.
type Coordinator struct {
	repo       asset.Repository
	logger     log.Logger
	statsd     *statsd.Reporter
	today      func() asset.Date
	loanPeriod int
}

func NewCoordinator(repo asset.Repository, logger log.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		repo:       repo,
		logger:     logger,
		today:      asset.Today,
		loanPeriod: asset.LoanPeriodDays,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Checkout turns every cart item into a requested loan or a conflict. Each
// loan commits on its own. On a store failure the loop stops: loans already
// committed stay committed and are returned in the partial result, the rest
// of the cart is left as it was.
func (c *Coordinator) Checkout(ctx context.Context, ws Workspace, borrower Borrower, comment string) (Result, error) {
	if err := validator.ValidateStruct(borrower); err != nil {
		return Result{}, asset.ValidationError{Op: "checkout", Field: "borrower", Err: err}
	}
	items := ws.CartRecords()
	if len(items) == 0 {
		return Result{}, asset.ValidationError{Op: "checkout", Err: asset.ErrEmptyCart}
	}

	start := time.Now()
	defer func() {
		c.statsd.Timing("checkout_duration", time.Since(start)).Publish()
	}()

	requested := c.today()
	due := requested.AddDays(c.loanPeriod)

	var res Result
	for _, item := range items {
		result, err := c.reserve(ctx, item, asset.LoanIntent{
			AssetID:       item.ID,
			BorrowerName:  borrower.Name(),
			BorrowerEmail: strings.TrimSpace(borrower.Email),
			Requested:     requested,
			Due:           due,
			Comment:       comment,
		})
		if err != nil {
			c.statsd.Incr("checkout_item").Tag("outcome", "error").Failure(err).Publish()
			return res, err
		}

		if result != reserved {
			if err := ws.Uncart(item.ID); err != nil {
				return res, err
			}
			res.Conflicts = append(res.Conflicts, Conflict{ID: item.ID, Name: item.Name, Deleted: result == deleted})
			c.statsd.Incr("checkout_item").Tag("outcome", result.String()).Success().Publish()
			c.logger.Warn("checkout conflict", "asset_id", item.ID, "outcome", result.String())
			continue
		}

		if err := ws.Settle(item.ID); err != nil {
			return res, err
		}
		res.CheckedOut = append(res.CheckedOut, item.ID)
		c.statsd.Incr("checkout_item").Tag("outcome", "committed").Success().Publish()
	}

	ws.ClearCart()
	if err := ws.Reload(ctx); err != nil {
		return res, err
	}

	c.logger.Info("checkout finished",
		"checked_out", len(res.CheckedOut),
		"conflicts", len(res.Conflicts),
	)
	return res, nil
}

type outcome int

const (
	reserved outcome = iota
	held
	deleted
)

func (o outcome) String() string {
	switch o {
	case held:
		return "conflict"
	case deleted:
		return "deleted"
	default:
		return "committed"
	}
}

// reserve tries to commit a loan for item. It reports held when another
// actor has an active loan on it and deleted when the asset is gone.
func (c *Coordinator) reserve(ctx context.Context, item asset.Record, intent asset.LoanIntent) (outcome, error) {
	existing, err := c.repo.FindActiveLoan(ctx, item.ID)
	if err != nil {
		return 0, asset.StoreUnavailableError{Op: "find active loan", AssetID: item.ID, Err: err}
	}
	if existing != nil {
		return held, nil
	}

	if err := c.repo.InsertLoan(ctx, intent.Loan()); err != nil {
		switch {
		case errors.Is(err, asset.ErrDuplicateKey):
			return held, nil
		case errors.As(err, new(asset.NotFoundError)):
			return deleted, nil
		}
		return 0, asset.StoreUnavailableError{Op: "insert loan", AssetID: item.ID, Err: err}
	}
	return reserved, nil
}
