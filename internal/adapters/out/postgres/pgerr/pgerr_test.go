package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"quickbite/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: pgerr.UniqueViolation, ConstraintName: "deliveries_order_id_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"any constraint", dup, "", true},
		{"matching constraint", dup, "deliveries_order_id_key", true},
		{"other constraint", dup, "carts_customer_id_key", false},
		{"wrapped", fmt.Errorf("insert: %w", dup), "", true},
		{"other sqlstate", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerr.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
