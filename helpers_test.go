package fixture

import "github.com/cockroachdb/errors"

// errorsIs also follows cockroachdb marks.
func errorsIs(err, reference error) bool {
	return errors.Is(err, reference)
}
