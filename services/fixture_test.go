package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository/memory"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []entity.OrderEvent
}

func (n *recordingNotifier) Publish(ev entity.OrderEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) types() []entity.OrderEventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]entity.OrderEventType, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	t   *testing.T
	ctx context.Context
	st  Stores

	users   *UserService
	buyers  *BuyerService
	vendors *VendorService
	menu    *MenuService
	carts   *CartService
	orders  *OrderService
	events  *recordingNotifier
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	db := memory.New()
	st := Stores{
		Users:   db.Users(),
		Buyers:  db.Buyers(),
		Vendors: db.Vendors(),
		Menu:    db.Menu(),
		Carts:   db.Carts(),
		Orders:  db.Orders(),
	}
	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		st:     st,
		events: &recordingNotifier{},
		now:    time.Now().Truncate(time.Second),
	}
	f.users = NewUserService(st.Users)
	f.buyers = NewBuyerService(st)
	f.vendors = NewVendorService(st)
	f.menu = NewMenuService(st)
	f.menu.Now = f.clock
	f.carts = NewCartService(st)
	f.orders = NewOrderService(st, f.events)
	f.orders.Now = f.clock
	return f
}

// clock advances a minute per call so orders get distinct timestamps.
func (f *fixture) clock() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fixture) user(email string) *entity.User {
	u, err := f.users.Signup(f.ctx, CredentialsInput{Email: email, Password: "secret123"})
	require.NoError(f.t, err)
	return u
}

func (f *fixture) buyer(email string) primitive.ObjectID {
	b, err := f.buyers.Create(f.ctx, f.user(email).ID, BuyerInput{Name: "Buyer " + email, Address: "1 Main St"})
	require.NoError(f.t, err)
	return b.ID
}

func (f *fixture) vendor(name string) primitive.ObjectID {
	v, err := f.vendors.Create(f.ctx, f.user(name+"@vendor.test").ID, VendorInput{
		Name: name, Address: "2 Market St", PriceRange: entity.PriceMedium, Phone: "555-0100",
	})
	require.NoError(f.t, err)
	return v.ID
}

func (f *fixture) item(vendorID primitive.ObjectID, name string, price float64) primitive.ObjectID {
	m, err := f.menu.Create(f.ctx, vendorID, MenuItemInput{Name: name, Price: price, Category: "mains"})
	require.NoError(f.t, err)
	return m.ID
}

func (f *fixture) cart(buyerID, vendorID primitive.ObjectID, lines ...CartItemInput) *entity.CartDetail {
	c, err := f.carts.Create(f.ctx, buyerID, CreateCartInput{VendorID: vendorID.Hex(), Items: lines})
	require.NoError(f.t, err)
	return c
}

func line(item primitive.ObjectID, qty int) CartItemInput {
	return CartItemInput{Item: item.Hex(), Quantity: qty}
}

func upsert(item primitive.ObjectID, qty int) UpsertItemInput {
	return UpsertItemInput{Item: item.Hex(), Quantity: &qty}
}

func requireKind(t *testing.T, err error, kind apperr.Kind, status int) {
	t.Helper()
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok, "expected apperr, got %v", err)
	require.Equal(t, kind, e.Kind, e.Message)
	require.Equal(t, status, e.Status, e.Message)
}
