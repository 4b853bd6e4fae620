package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArtistCalendar/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	begins   int
	lastOpts *sql.TxOptions
	beginErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.begins++
	b.lastOpts = opts
	return b.tx, nil
}

func TestDo_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
}

func TestDo_RollbackOnError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.True(t, b.tx.rolledBack)
	assert.False(t, b.tx.committed)
}

func TestDo_RollbackOnPanic(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	assert.Panics(t, func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error { panic("boom") })
	})
	assert.True(t, b.tx.rolledBack)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.begins)
	assert.Nil(t, b.lastOpts)
}

func TestDoSerializable_Options(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	require.NoError(t, m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil }))
	require.NotNil(t, b.lastOpts)
	assert.Equal(t, sql.LevelSerializable, b.lastOpts.Isolation)
}

func TestDo_BeginAndCommitErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no conn")})
	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)

	b := &fakeBeginner{tx: &fakeTx{commitErr: errors.New("serialization failure")}}
	m = NewTransactionManager(b)
	err = m.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCommitTx)
}
