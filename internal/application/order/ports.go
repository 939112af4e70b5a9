package order

import (
	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
)

// IDGenerator hands out order identifiers.
type IDGenerator = domain.IDGenerator
