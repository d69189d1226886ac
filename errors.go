package ctaes

import "fmt"

func errInvalidBackend(b Backend) error {
	return fmt.Errorf("ctaes: unknown backend %d", int(b))
}
