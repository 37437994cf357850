package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/criscode097/vacarent/internal/listing"
)

// ListingRepository persists the listing collection as a whole snapshot:
// every save replaces the stored rows with the current collection. Position
// keeps insertion order stable across reloads.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Position    int     `gorm:"column:position;uniqueIndex"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	Active      bool    `gorm:"column:active"`
	Priority    string  `gorm:"column:priority"`
	Category    string  `gorm:"column:category"`
	Price       float64 `gorm:"column:price"`
	Capacity    int     `gorm:"column:capacity"`
	CreatedAt   string  `gorm:"column:created_at"`
	UpdatedAt   string  `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

func toDomainItem(m listingModel) listing.Item {
	return listing.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		Priority:    listing.Priority(m.Priority),
		Category:    m.Category,
		Price:       m.Price,
		Capacity:    m.Capacity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toListingModel(item listing.Item, position int) listingModel {
	return listingModel{
		ID:          item.ID,
		Position:    position,
		Name:        item.Name,
		Description: item.Description,
		Active:      item.Active,
		Priority:    string(item.Priority),
		Category:    item.Category,
		Price:       item.Price,
		Capacity:    item.Capacity,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *ListingRepository) Migrate() error {
	return r.db.AutoMigrate(&listingModel{})
}

// Save overwrites the stored snapshot with the given collection. The delete
// and insert run in one transaction so a failed save leaves the previous
// snapshot intact.
func (r *ListingRepository) Save(ctx context.Context, items []listing.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&listingModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		models := make([]listingModel, len(items))
		for i, item := range items {
			models[i] = toListingModel(item, i)
		}
		if err := tx.Create(&models).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrSnapshotConflict
			}
			return err
		}
		return nil
	})
}

// ErrSnapshotConflict reports duplicate ids inside one snapshot write.
var ErrSnapshotConflict = errors.New("snapshot contains conflicting listing ids")

// Load reads the stored snapshot in insertion order. Any read failure
// degrades to an empty collection; a missing snapshot is not an error.
func (r *ListingRepository) Load(ctx context.Context) []listing.Item {
	var models []listingModel
	tx := r.db.WithContext(ctx).Order("position ASC").Find(&models)
	if tx.Error != nil {
		return nil
	}
	items := make([]listing.Item, len(models))
	for i, m := range models {
		items[i] = toDomainItem(m)
	}
	return items
}
