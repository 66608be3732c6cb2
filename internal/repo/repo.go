// Package repo holds the per-entity repositories: the only code allowed to
// talk to the scoped gateways. Repositories apply the context mappers in
// both directions and translate store sentinels into domain error kinds.
package repo

import (
	"errors"

	"partnerdesk/internal/domain"
	"partnerdesk/internal/store"
)

func wrap(err error) error {
	if errors.Is(err, store.ErrUnavailable) {
		return domain.Unavailable(err)
	}
	return err
}
