package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Stores interface {
		// AddStore inserts a new store and returns its id.
		AddStore(ctx context.Context, s *entity.StoreInsert) (int, error)
		UpdateStore(ctx context.Context, id int, s *entity.StoreInsert) error
		DeleteStoreById(ctx context.Context, id int) error
		GetStoreById(ctx context.Context, id int) (*entity.Store, error)
		// ListStores returns all stores ordered by id.
		ListStores(ctx context.Context) ([]entity.Store, error)
		ListLastActivity(ctx context.Context) ([]entity.StoreActivity, error)
	}

	Products interface {
		AddProduct(ctx context.Context, p *entity.ProductInsert) (int, error)
		UpdateProduct(ctx context.Context, id int, p *entity.ProductInsert) error
		DeleteProductById(ctx context.Context, id int) error
		GetProductById(ctx context.Context, id int) (*entity.Product, error)
		GetProductsByIds(ctx context.Context, ids []int) ([]entity.Product, error)
		ListProducts(ctx context.Context) ([]entity.Product, error)
		SetProductAvailability(ctx context.Context, id int, available bool) error
		SetProductImage(ctx context.Context, id int, url string) error
	}

	Visits interface {
		AddVisit(ctx context.Context, v *entity.VisitInsert) (*entity.Visit, error)
		DeleteVisitById(ctx context.Context, id int) error
		GetVisitById(ctx context.Context, id int) (*entity.Visit, error)
		// ListVisitsByRange returns visits created in [from, to).
		ListVisitsByRange(ctx context.Context, from, to time.Time) ([]entity.Visit, error)
		ListVisitsByStore(ctx context.Context, storeId int) ([]entity.Visit, error)
	}

	Orders interface {
		// CreateOrder inserts the order with its items. Items must already be priced.
		CreateOrder(ctx context.Context, o *entity.OrderFull) (*entity.OrderFull, error)
		DeleteOrderById(ctx context.Context, id int) error
		GetOrderById(ctx context.Context, id int) (*entity.OrderFull, error)
		GetOrderByUUID(ctx context.Context, uuid string) (*entity.OrderFull, error)
		// ListOrdersByRange returns orders created in [from, to) with items.
		ListOrdersByRange(ctx context.Context, from, to time.Time) ([]entity.OrderFull, error)
		ListOrdersByStore(ctx context.Context, storeId int, from, to time.Time) ([]entity.OrderFull, error)
	}

	Targets interface {
		GetTarget(ctx context.Context) (*entity.MonthlyTarget, error)
		SaveTarget(ctx context.Context, t *entity.MonthlyTarget) error
	}

	Rewards interface {
		AddRewardClaim(ctx context.Context, c *entity.RewardClaim) (int, error)
		ListRewardClaims(ctx context.Context, storeId int, monthKey string) ([]entity.RewardClaim, error)
	}

	Reps interface {
		AddRep(ctx context.Context, username, pwHash string) error
		DeleteRep(ctx context.Context, username string) error
		PasswordHashByUsername(ctx context.Context, username string) (string, error)
	}

	Mail interface {
		AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error)
		GetAllUnsent(ctx context.Context, withError bool) ([]entity.SendEmailRequest, error)
		UpdateSent(ctx context.Context, id int) error
		AddError(ctx context.Context, id int, errMsg string) error
		// DigestQueued reports whether a digest for the given day is already queued.
		DigestQueued(ctx context.Context, day string) (bool, error)
	}

	Repository interface {
		Stores() Stores
		Products() Products
		Visits() Visits
		Orders() Orders
		Targets() Targets
		Rewards() Rewards
		Reps() Reps
		Mail() Mail
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// UploadProductImage stores a base64 encoded image and returns its public URL.
		UploadProductImage(ctx context.Context, rawB64Image string, productId int) (string, error)
	}

	Mailer interface {
		QueueDigest(ctx context.Context, day string, d *entity.Dashboard) error
		// DigestDue reports whether the digest of the current day may be queued.
		DigestDue(now time.Time) bool
		Start(ctx context.Context) error
		Stop() error
	}

	// Reporter builds the read models the background workers need.
	Reporter interface {
		Dashboard(ctx context.Context) (*entity.Dashboard, error)
		MonthSnapshot(ctx context.Context) (*entity.Snapshot, error)
	}

	// Sender delivers a single email.
	Sender interface {
		Send(ctx context.Context, m *entity.SendEmailRequest) error
	}

	// Publisher emits domain events. Implementations must not block the caller
	// for long; delivery is best effort.
	Publisher interface {
		Publish(ctx context.Context, routingKey string, payload any) error
		Close() error
	}

	// SnapshotCache holds the latest precomputed monthly ranking.
	SnapshotCache interface {
		GetSnapshot() (*entity.Snapshot, bool)
		SetSnapshot(s *entity.Snapshot)
		GetTarget() (entity.MonthlyTarget, bool)
		SetTarget(t entity.MonthlyTarget)
	}
)
