package rentalrepo

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRentalOrderRepository implements RentalOrderRepository using GORM.
type GormRentalOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRentalOrderRepository creates a new GORM rental order repository.
func NewGormRentalOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormRentalOrderRepository {
	return &GormRentalOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormRentalOrderRepository) Add(ctx context.Context, aggregate *rental.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormRentalOrderRepository) Update(ctx context.Context, aggregate *rental.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormRentalOrderRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByClient retrieves the client's order in Open status, if any.
// Returns nil without error when the client has no open order.
func (r *GormRentalOrderRepository) GetOpenByClient(
	ctx context.Context,
	clientID kernel.UUID,
) (*rental.Order, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "client_id = ? AND status = ?", clientID.Bytes(), rental.Open.String()).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil // no open order and no error
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves Approved orders whose rental window ended before
// the given moment.
func (r *GormRentalOrderRepository) GetAllOverdue(
	ctx context.Context,
	before time.Time,
) ([]*rental.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND end_date < ?", rental.Approved.String(), before).
		Error
	if err != nil {
		return nil, err
	}

	orders := make([]*rental.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
