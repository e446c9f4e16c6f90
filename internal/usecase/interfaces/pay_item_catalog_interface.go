package interfaces

import "kantidad/internal/domain/entities"

// IPayItemCatalog is the read-only DPWH pay-item lookup collaborator.

type IPayItemCatalog interface {
	Lookup(itemNumber string) (entities.PayItem, bool)
}
