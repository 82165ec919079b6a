package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(errors.New("Error 1062 (23000): Duplicate entry '9780141439518' for key 'books.idx_books_isbn'")))
	assert.True(t, isDuplicateError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_books_isbn" (SQLSTATE 23505)`)))
	assert.True(t, isDuplicateError(errors.New("constraint failed: UNIQUE constraint failed: books.isbn (2067)")))
	assert.False(t, isDuplicateError(errors.New("connection refused")))
	assert.False(t, isDuplicateError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyError(errors.New("Error 1451 (23000): Cannot delete or update a parent row: a foreign key constraint fails")))
	assert.True(t, isForeignKeyError(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.True(t, isForeignKeyError(errors.New(`ERROR: update or delete on table "authors" violates foreign key constraint "fk_authors_books"`)))
	assert.False(t, isForeignKeyError(errors.New("timeout")))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%jane%", likePattern("JaNe"))
}
