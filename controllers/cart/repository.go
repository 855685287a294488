package cartControllers

import (
	"context"
	"errors"
	"time"

	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

// GormRepository stores cart lines in the carts/cart_items tables.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, userID string) ([]Line, error) {
	cart, err := r.userCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Order("added_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, toLine(item))
	}
	return lines, nil
}

func (r *GormRepository) Create(ctx context.Context, userID string, gadgetID uint) (Line, error) {
	var gadget models.Gadget
	if err := r.db.WithContext(ctx).First(&gadget, "id = ?", gadgetID).Error; err != nil {
		return Line{}, err
	}

	cart, err := r.ensureCart(ctx, userID)
	if err != nil {
		return Line{}, err
	}

	item := models.CartItem{
		CartID:       cart.CartID,
		GadgetID:     gadget.ID,
		GadgetName:   gadget.Name,
		GadgetImage:  gadget.Image,
		UnitPrice:    gadget.Price,
		InStock:      gadget.InStock,
		SwapEligible: gadget.SwapEligible,
		Quantity:     1,
		AddedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return Line{}, err
	}
	return toLine(item), nil
}

func (r *GormRepository) UpdateQuantity(ctx context.Context, userID string, gadgetID uint, quantity int) (Line, error) {
	cart, err := r.userCart(ctx, userID)
	if err != nil {
		return Line{}, err
	}

	var item models.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND gadget_id = ?", cart.CartID, gadgetID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Line{}, ErrLineNotFound
		}
		return Line{}, err
	}

	// AddedAt is left untouched so the stored line order survives edits.
	item.Quantity = quantity
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return Line{}, err
	}
	return toLine(item), nil
}

func (r *GormRepository) Delete(ctx context.Context, userID string, gadgetID uint) error {
	cart, err := r.userCart(ctx, userID)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND gadget_id = ?", cart.CartID, gadgetID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (r *GormRepository) DeleteAll(ctx context.Context, userID string) error {
	cart, err := r.userCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepository) userCart(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

func (r *GormRepository) ensureCart(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := r.userCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, err
	}
	cart = models.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func toLine(item models.CartItem) Line {
	return Line{
		ItemID:       item.ID,
		GadgetID:     item.GadgetID,
		GadgetName:   item.GadgetName,
		GadgetImage:  item.GadgetImage,
		UnitPrice:    item.UnitPrice,
		InStock:      item.InStock,
		SwapEligible: item.SwapEligible,
		Quantity:     item.Quantity,
		AddedAt:      item.AddedAt,
	}
}
