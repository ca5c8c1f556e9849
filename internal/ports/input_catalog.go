package ports

import "github.com/aalvaropc/aocinput/internal/domain"

type InputCatalog interface {
	ListInputs() ([]domain.InputRef, error)
}
