package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrDuplicateKey},
		{"gorm fk violated", gorm.ErrForeignKeyViolated, ErrForeignKey},
		{"sqlite unique message", errors.New("UNIQUE constraint failed: users.email"), ErrDuplicateKey},
		{"mysql duplicate entry", errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'email'"), ErrDuplicateKey},
		{"sqlite fk message", errors.New("FOREIGN KEY constraint failed"), ErrForeignKey},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Translate(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslatePassesThroughUnknownErrors(t *testing.T) {
	plain := errors.New("some query error")
	assert.Equal(t, plain, Translate(plain))
}
