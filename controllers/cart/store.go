package cartControllers

import (
	"context"
	"errors"
	"time"
)

var ErrLineNotFound = errors.New("cart line not found")

// Line is one (gadget, quantity) pairing owned by a user, carrying the
// gadget snapshot taken when the line was created.
type Line struct {
	ItemID       uint      `json:"id"`
	GadgetID     uint      `json:"gadget_id"`
	GadgetName   string    `json:"gadget_name"`
	GadgetImage  string    `json:"gadget_image"`
	UnitPrice    int64     `json:"unit_price"`
	InStock      bool      `json:"in_stock"`
	SwapEligible bool      `json:"swap_eligible"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// Repository persists cart lines for a user.
type Repository interface {
	// List returns the user's lines in stored (added_at) order.
	List(ctx context.Context, userID string) ([]Line, error)
	// Create inserts a quantity-1 line for the gadget, snapshotting its
	// current name and price.
	Create(ctx context.Context, userID string, gadgetID uint) (Line, error)
	// UpdateQuantity persists a new quantity on an existing line.
	UpdateQuantity(ctx context.Context, userID string, gadgetID uint, quantity int) (Line, error)
	// Delete removes one line. Returns ErrLineNotFound if absent.
	Delete(ctx context.Context, userID string, gadgetID uint) error
	// DeleteAll removes every line the user owns.
	DeleteAll(ctx context.Context, userID string) error
}

// Store holds the authoritative cart lines for one user. Every mutation
// persists first and patches the in-memory lines only from the persisted
// row, so a failed call leaves the lines untouched.
type Store struct {
	repo   Repository
	userID string
	lines  []Line
}

func NewStore(repo Repository, userID string) *Store {
	return &Store{repo: repo, userID: userID}
}

// Load replaces the in-memory lines with the persisted ones. For an
// unauthenticated user it resolves to an empty cart without touching
// the repository.
func (s *Store) Load(ctx context.Context) error {
	if s.userID == "" {
		s.lines = nil
		return nil
	}
	lines, err := s.repo.List(ctx, s.userID)
	if err != nil {
		return err
	}
	s.lines = lines
	return nil
}

// Add increments an existing line's quantity by one, or creates a new
// quantity-1 line for the gadget.
func (s *Store) Add(ctx context.Context, gadgetID uint) error {
	if line := s.find(gadgetID); line != nil {
		return s.SetQuantity(ctx, gadgetID, line.Quantity+1)
	}
	line, err := s.repo.Create(ctx, s.userID, gadgetID)
	if err != nil {
		return err
	}
	s.lines = append(s.lines, line)
	return nil
}

// SetQuantity persists a new quantity on the gadget's line. Quantities
// below 1 are rejected as a no-op.
func (s *Store) SetQuantity(ctx context.Context, gadgetID uint, quantity int) error {
	if quantity < 1 {
		return nil
	}
	line, err := s.repo.UpdateQuantity(ctx, s.userID, gadgetID, quantity)
	if err != nil {
		return err
	}
	if current := s.find(gadgetID); current != nil {
		*current = line
	} else {
		s.lines = append(s.lines, line)
	}
	return nil
}

// Remove deletes the gadget's line.
func (s *Store) Remove(ctx context.Context, gadgetID uint) error {
	if err := s.repo.Delete(ctx, s.userID, gadgetID); err != nil {
		return err
	}
	for i, line := range s.lines {
		if line.GadgetID == gadgetID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return nil
}

// Clear deletes every line. Used after a successful checkout.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx, s.userID); err != nil {
		return err
	}
	s.lines = nil
	return nil
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice is the sum of quantity × unit price across all lines,
// in whole Naira.
func (s *Store) TotalPrice() int64 {
	var total int64
	for _, line := range s.lines {
		total += int64(line.Quantity) * line.UnitPrice
	}
	return total
}

// Lines returns the lines in stored order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) find(gadgetID uint) *Line {
	for i := range s.lines {
		if s.lines[i].GadgetID == gadgetID {
			return &s.lines[i]
		}
	}
	return nil
}
