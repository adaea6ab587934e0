package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cart"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// Clarification texts for order and price requests that name no known dish.
const (
	OrderClarification = "Извините, я не понял, что вы хотите заказать. Можете уточнить или попробовать еще раз?"
	PriceClarification = "Извините, я не понял, на какие блюда вы хотите узнать цену, " +
		"попробуйте снова или посмотрите все меню целиком"

	addedText = "Товар добавлен в ваш заказ"
	priceHint = "Если хотите заказать это - просто напишите об этом"
)

// ErrNoHandler is returned by NewDispatcher when an intent is left
// without a handler or responses.
var ErrNoHandler = errors.New("intent has no handler")

// Turn is the input of one dispatched intent.
type Turn struct {
	UserID   string
	Entities []domain.Entity
}

// Reply is a handler's answer. Receipt is set when the handler checked
// out a non-empty cart.
type Reply struct {
	Text    string
	Receipt *cart.Receipt
}

type handler func(ctx context.Context, canned string, t Turn) (Reply, error)

// Dispatcher maps a confirmed intent to its handler. It changes carts only
// through the cart manager and never touches dialogue context.
type Dispatcher struct {
	corpus   *domain.IntentCorpus
	catalog  *domain.Catalog
	carts    *cart.Manager
	chooser  Chooser
	menu     string
	handlers map[domain.Intent]handler
}

// NewDispatcher wires a handler for every known intent and checks that
// each has a non-empty response pool, as does the failure pool.
func NewDispatcher(corpus *domain.IntentCorpus, catalog *domain.Catalog, carts *cart.Manager, chooser Chooser) (*Dispatcher, error) {
	if chooser == nil {
		chooser = DefaultChooser()
	}
	d := &Dispatcher{
		corpus:  corpus,
		catalog: catalog,
		carts:   carts,
		chooser: chooser,
		menu:    RenderMenu(catalog),
	}
	d.handlers = map[domain.Intent]handler{
		domain.IntentGreeting:             d.cannedOnly,
		domain.IntentGoodbye:              d.cannedOnly,
		domain.IntentMenuRequest:          d.handleMenu,
		domain.IntentCartRequest:          d.handleCart,
		domain.IntentOrderRequest:         d.handleOrder,
		domain.IntentPriceRequest:         d.handlePrice,
		domain.IntentCompleteOrderRequest: d.handleCheckout,
		domain.IntentClearCartRequest:     d.handleClearCart,
	}

	var missing []string
	for _, in := range domain.AllIntents() {
		entry, ok := corpus.Entry(in)
		if _, wired := d.handlers[in]; !wired || !ok || len(entry.Responses) == 0 {
			missing = append(missing, string(in))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, strings.Join(missing, ", "))
	}
	if len(corpus.FailurePhrases) == 0 {
		return nil, errors.New("failure phrase pool is empty")
	}
	return d, nil
}

// Dispatch runs the handler of a confirmed intent.
func (d *Dispatcher) Dispatch(ctx context.Context, intent domain.Intent, t Turn) (Reply, error) {
	h, ok := d.handlers[intent]
	if !ok {
		return Reply{}, fmt.Errorf("dispatch %q: %w", intent, ErrNoHandler)
	}
	entry, _ := d.corpus.Entry(intent)
	return h(ctx, pick(d.chooser, entry.Responses), t)
}

// Failure returns a random phrase for input nothing could answer.
func (d *Dispatcher) Failure() string {
	return pick(d.chooser, d.corpus.FailurePhrases)
}

// Menu returns the rendered menu listing.
func (d *Dispatcher) Menu() string { return d.menu }

func (d *Dispatcher) cannedOnly(_ context.Context, canned string, _ Turn) (Reply, error) {
	return Reply{Text: canned}, nil
}

func (d *Dispatcher) handleMenu(_ context.Context, canned string, _ Turn) (Reply, error) {
	return Reply{Text: canned + "\n\n" + d.menu}, nil
}

func (d *Dispatcher) handleCart(_ context.Context, canned string, t Turn) (Reply, error) {
	return Reply{Text: canned + "\n\n" + d.carts.Show(t.UserID)}, nil
}

func (d *Dispatcher) resolveDish(entities []domain.Entity) (domain.MenuItem, bool) {
	return d.catalog.FindByNormalizedName(domain.NormalizedOfType(entities, domain.EntityMenuItem))
}

func (d *Dispatcher) handleOrder(_ context.Context, canned string, t Turn) (Reply, error) {
	item, ok := d.resolveDish(t.Entities)
	if !ok {
		return Reply{Text: OrderClarification}, nil
	}
	d.carts.Add(t.UserID, item)
	return Reply{Text: fmt.Sprintf("%s\n\n%s - %d руб.\n\n%s", canned, item.Name, item.Price, addedText)}, nil
}

func (d *Dispatcher) handlePrice(_ context.Context, canned string, t Turn) (Reply, error) {
	item, ok := d.resolveDish(t.Entities)
	if !ok {
		return Reply{Text: PriceClarification}, nil
	}
	return Reply{Text: fmt.Sprintf("%s\n\n%s - %d руб.\n%s\n\n%s", canned, item.Name, item.Price, item.Description, priceHint)}, nil
}

func (d *Dispatcher) handleCheckout(_ context.Context, canned string, t Turn) (Reply, error) {
	r, err := d.carts.Checkout(t.UserID)
	if err != nil {
		return Reply{}, err
	}
	reply := Reply{Text: canned + "\n\n" + r.Text}
	if !r.Empty {
		reply.Receipt = &r
	}
	return reply, nil
}

// The canned response is the whole reply; the clear confirmation text is
// not repeated.
func (d *Dispatcher) handleClearCart(_ context.Context, canned string, t Turn) (Reply, error) {
	d.carts.Clear(t.UserID)
	return Reply{Text: canned}, nil
}
