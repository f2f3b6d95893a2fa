package store

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin upserts the admin account used by the review surface. Meant for
// startup seeding; the password arrives from configuration, never from a
// request.
func (s *Store) EnsureAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "admin: hash password")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user (username, password_hash)
		VALUES (?, ?)
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash`,
		username, string(hash),
	)
	return errors.Wrap(err, "admin: upsert user")
}
