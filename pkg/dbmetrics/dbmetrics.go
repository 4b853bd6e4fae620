package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DefaultCollectInterval период сбора статистики connection pool
const DefaultCollectInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обёрток над ними
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Observer принимает длительности запросов и статистику пула
// Реализуется *metrics.Metrics
type Observer interface {
	ObserveDBQuery(operation string, duration time.Duration)
	ObservePoolStats(dbName string, stats sql.DBStats)
}

// DB обёртка над *sql.DB, замеряющая длительность запросов.
// Без observer работает как прозрачный прокси.
type DB struct {
	db       *sql.DB
	observer Observer
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с интервалом DefaultCollectInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, observer Observer, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, observer)
	if observer != nil {
		go wrapped.collectPoolStats(dbName, DefaultCollectInterval, stopCh)
	}
	return wrapped
}

func (d *DB) collectPoolStats(dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.observer.ObservePoolStats(dbName, d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.observer.ObservePoolStats(dbName, d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

func (d *DB) observe(operation string, start time.Time) {
	if d.observer != nil {
		d.observer.ObserveDBQuery(operation, time.Since(start))
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию; запросы внутри неё тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, observer: d.observer}, nil
}

// Tx обёртка над *sql.Tx
type Tx struct {
	tx       *sql.Tx
	observer Observer
}

func (t *Tx) observe(operation string, start time.Time) {
	if t.observer != nil {
		t.observer.ObserveDBQuery(operation, time.Since(start))
	}
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
