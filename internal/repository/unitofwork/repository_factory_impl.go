package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db        *gorm.DB
	dimension int
}

func NewRepositoryFactory(db *gorm.DB, embeddingDimension int) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:        db,
		dimension: embeddingDimension,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request, the global DB instance is shared.
	return NewUnitOfWork(f.db, f.dimension)
}
