package cartControllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository with per-method failure toggles
// and call counters.
type fakeRepo struct {
	prices map[uint]int64
	swap   map[uint]bool

	lines  map[string][]Line
	nextID uint

	failCreate bool
	failUpdate bool
	calls      map[string]int
}

func newFakeRepo(prices map[uint]int64) *fakeRepo {
	return &fakeRepo{
		prices: prices,
		swap:   map[uint]bool{},
		lines:  map[string][]Line{},
		calls:  map[string]int{},
	}
}

func (f *fakeRepo) List(ctx context.Context, userID string) ([]Line, error) {
	f.calls["List"]++
	out := make([]Line, len(f.lines[userID]))
	copy(out, f.lines[userID])
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, userID string, gadgetID uint) (Line, error) {
	f.calls["Create"]++
	if f.failCreate {
		return Line{}, errors.New("create failed")
	}
	price, ok := f.prices[gadgetID]
	if !ok {
		return Line{}, gorm.ErrRecordNotFound
	}
	f.nextID++
	line := Line{
		ItemID:       f.nextID,
		GadgetID:     gadgetID,
		UnitPrice:    price,
		SwapEligible: f.swap[gadgetID],
		Quantity:     1,
		AddedAt:      time.Now(),
	}
	f.lines[userID] = append(f.lines[userID], line)
	return line, nil
}

func (f *fakeRepo) UpdateQuantity(ctx context.Context, userID string, gadgetID uint, quantity int) (Line, error) {
	f.calls["UpdateQuantity"]++
	if f.failUpdate {
		return Line{}, errors.New("update failed")
	}
	for i := range f.lines[userID] {
		if f.lines[userID][i].GadgetID == gadgetID {
			f.lines[userID][i].Quantity = quantity
			return f.lines[userID][i], nil
		}
	}
	return Line{}, ErrLineNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, userID string, gadgetID uint) error {
	f.calls["Delete"]++
	for i, line := range f.lines[userID] {
		if line.GadgetID == gadgetID {
			f.lines[userID] = append(f.lines[userID][:i], f.lines[userID][i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (f *fakeRepo) DeleteAll(ctx context.Context, userID string) error {
	f.calls["DeleteAll"]++
	delete(f.lines, userID)
	return nil
}

func sumLines(lines []Line) (count int, total int64) {
	for _, line := range lines {
		count += line.Quantity
		total += int64(line.Quantity) * line.UnitPrice
	}
	return count, total
}

func TestAddSameGadgetNTimes(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{7: 150000})
	store := NewStore(repo, "user-1")
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, store.Add(ctx, 7))
	}

	assert.Equal(t, n, store.ItemCount())
	assert.Equal(t, int64(n*150000), store.TotalPrice())
	assert.Len(t, store.Lines(), 1)
}

func TestTotalPriceInvariantAfterEveryMutation(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{1: 100000, 2: 5000, 3: 70000})
	store := NewStore(repo, "user-1")
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	check := func() {
		count, total := sumLines(store.Lines())
		assert.Equal(t, count, store.ItemCount())
		assert.Equal(t, total, store.TotalPrice())
	}

	require.NoError(t, store.Add(ctx, 1))
	check()
	require.NoError(t, store.Add(ctx, 2))
	check()
	require.NoError(t, store.SetQuantity(ctx, 1, 4))
	check()
	require.NoError(t, store.Add(ctx, 3))
	check()
	require.NoError(t, store.Remove(ctx, 2))
	check()

	assert.Equal(t, int64(4*100000+70000), store.TotalPrice())
}

func TestSetQuantityBelowOneIsNoOp(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{1: 100000})
	store := NewStore(repo, "user-1")
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Add(ctx, 1))

	before := store.Lines()
	updates := repo.calls["UpdateQuantity"]

	require.NoError(t, store.SetQuantity(ctx, 1, 0))
	require.NoError(t, store.SetQuantity(ctx, 1, -1))

	assert.Equal(t, before, store.Lines())
	assert.Equal(t, updates, repo.calls["UpdateQuantity"], "rejected quantities must not reach the repository")
}

func TestClearResetsAggregates(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{1: 100000, 2: 5000})
	store := NewStore(repo, "user-1")
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Add(ctx, 1))
	require.NoError(t, store.Add(ctx, 2))

	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, int64(0), store.TotalPrice())
	assert.Empty(t, store.Lines())
}

func TestLoadUnauthenticatedIsEmptyNoOp(t *testing.T) {
	repo := newFakeRepo(nil)
	store := NewStore(repo, "")

	require.NoError(t, store.Load(context.Background()))

	assert.Empty(t, store.Lines())
	assert.Zero(t, repo.calls["List"], "unauthenticated load must not hit the repository")
}

func TestFailedMutationLeavesStateUnchanged(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{1: 100000})
	store := NewStore(repo, "user-1")
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.Add(ctx, 1))

	before := store.Lines()

	repo.failUpdate = true
	require.Error(t, store.SetQuantity(ctx, 1, 3))
	assert.Equal(t, before, store.Lines())

	repo.failCreate = true
	require.Error(t, store.Add(ctx, 99))
	assert.Equal(t, before, store.Lines())
}

func TestLoadReplacesState(t *testing.T) {
	repo := newFakeRepo(map[uint]int64{1: 100000, 2: 5000})
	ctx := context.Background()

	writer := NewStore(repo, "user-1")
	require.NoError(t, writer.Load(ctx))
	require.NoError(t, writer.Add(ctx, 1))
	require.NoError(t, writer.Add(ctx, 2))

	reader := NewStore(repo, "user-1")
	require.NoError(t, reader.Load(ctx))

	assert.Equal(t, writer.ItemCount(), reader.ItemCount())
	assert.Equal(t, writer.TotalPrice(), reader.TotalPrice())
}
