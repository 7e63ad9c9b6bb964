package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSetBuilder(t *testing.T) {
	var b setBuilder
	assert.True(t, b.empty())

	b.add("name", "Tubo")
	b.add("slug", "tubo")
	b.raw("updated_at = NOW()")

	query, args := b.build("products", "id-1", "id, name")
	assert.Equal(t, "UPDATE products SET name = $1, slug = $2, updated_at = NOW() WHERE id = $3 RETURNING id, name", query)
	assert.Equal(t, []interface{}{"Tubo", "tubo", "id-1"}, args)
	assert.Len(t, b.args, 2)
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})
	assert.True(t, hasCode(err, codeUniqueViolation))
	assert.False(t, hasCode(err, codeForeignKeyViolation))
	assert.False(t, hasCode(errors.New("boom"), codeUniqueViolation))
}
