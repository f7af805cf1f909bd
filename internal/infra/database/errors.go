package database

import (
	"errors"

	"github.com/lib/pq"

	"github.com/workvine/crm-backend/internal/entity"
)

const uniqueViolation = "23505"

// mapConflict turns a Postgres unique violation into the matching typed
// domain error, keyed by constraint name. The unique indexes are the
// authoritative guard; application-level pre-checks only exist for
// friendlier messages.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}

	switch pqErr.Constraint {
	case "clients_email_key":
		return entity.ErrClientEmailExists
	case "clients_phone_key":
		return entity.ErrClientPhoneExists
	}
	return err
}
