package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows should be not-found")
	}
	if !isNotFound(fmt.Errorf("scan row: %w", sql.ErrNoRows)) {
		t.Fatal("wrapped sql.ErrNoRows should be not-found")
	}
	if isNotFound(errors.New("connection reset")) {
		t.Fatal("other errors are not not-found")
	}
	if isNotFound(nil) {
		t.Fatal("nil is not not-found")
	}
}

func TestNullString(t *testing.T) {
	t.Parallel()

	if got := nullString(""); got.Valid {
		t.Fatal("empty string should be NULL")
	}
	got := nullString("caught")
	if !got.Valid || got.String != "caught" {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestNullInt64(t *testing.T) {
	t.Parallel()

	if got := nullInt64(0); got.Valid {
		t.Fatal("zero should be NULL")
	}
	got := nullInt64(42)
	if !got.Valid || got.Int64 != 42 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestNullStringToString(t *testing.T) {
	t.Parallel()

	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := nullStringToString(sql.NullString{String: "bowled", Valid: true}); got != "bowled" {
		t.Fatalf("expected bowled, got %q", got)
	}
}
