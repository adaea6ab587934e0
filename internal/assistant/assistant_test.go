package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/corpus"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const fixtureMenu = `{
  "суп": {"name": "Суп", "price": 200, "description": "Горячий",
          "spiciness": 0.2, "vegetarian": 0, "saltiness": 0.6, "sweetness": 0.1},
  "торт": {"name": "Торт", "price": 150, "description": "Сладкий",
           "spiciness": 0, "vegetarian": 1, "saltiness": 0.1, "sweetness": 0.9},
  "чай": {"name": "Чай", "price": 100, "description": "Чёрный",
          "spiciness": 0, "vegetarian": 1, "saltiness": 0, "sweetness": 0.3}
}`

const fixtureIntents = `{
  "intents": {
    "greeting": {"examples": ["привет", "добрый день"], "responses": ["Здравствуйте!", "Привет!"]},
    "menu_request": {"examples": ["покажи меню", "меню"], "responses": ["Вот меню:"]},
    "cart_request": {"examples": ["что в корзине", "корзина"], "responses": ["Ваша корзина:"]},
    "order_request": {"examples": ["хочу <DISH>", "закажу <DISH>"], "responses": ["Отлично!"]},
    "price_request": {"examples": ["сколько стоит <DISH>", "цена <DISH>"], "responses": ["Сейчас скажу."]},
    "complete_order_request": {"examples": ["оформи заказ", "оформить заказ"], "responses": ["Оформляю."]},
    "clear_cart_request": {"examples": ["очисти корзину", "очистить корзину"], "responses": ["Очищено."]},
    "goodbye": {"examples": ["пока", "до свидания"], "responses": ["До встречи!"]}
  },
  "failure_phrases": ["Не понял.", "Повторите, пожалуйста."]
}`

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		corpus.MenuFile:      {Data: []byte(fixtureMenu)},
		corpus.IntentsFile:   {Data: []byte(fixtureIntents)},
		corpus.DialoguesFile: {Data: []byte("- как дела\n- Отлично, а у вас?\n\n- где вы\n- В центре.")},
		corpus.EmotionsFile:  {Data: []byte("term;tag;value;a;b;c;d;e\nужасно;NGTV;-1.0;0;0;0;0;0\nотлично;PSTV;1.0;0;0;0;0;0\n")},
	}
}

type firstChooser struct{}

func (firstChooser) IntN(int) int { return 0 }

type memoryRecorder struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
}

func (r *memoryRecorder) RecordOrder(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.orders = append(r.orders, o)
	return nil
}

func newAssistant(t *testing.T, opts Options) *Assistant {
	t.Helper()
	b, err := corpus.LoadAll(context.Background(), fixtureFS())
	require.NoError(t, err)
	a, err := FromBundle(b, nil, DefaultThresholds(), firstChooser{}, opts)
	require.NoError(t, err)
	return a
}

func send(t *testing.T, a *Assistant, user, text string) string {
	t.Helper()
	reply, err := a.HandleMessage(context.Background(), user, text)
	require.NoError(t, err)
	return reply
}

func TestHandleMessage_Greeting(t *testing.T) {
	a := newAssistant(t, Options{})
	assert.Equal(t, "Здравствуйте!", send(t, a, "u1", "Привет!"))

	c, err := a.Store.Context("u1")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentGreeting, c.LastIntent)
}

func TestHandleMessage_CounterGrowsFromFive(t *testing.T) {
	a := newAssistant(t, Options{})

	_, err := a.Store.Context("new")
	require.ErrorIs(t, err, session.ErrUnknownUser)

	send(t, a, "new", "привет")
	c, _ := a.Store.Context("new")
	assert.Equal(t, 6, c.RecommendationCounter)

	send(t, a, "new", "ъъъ")
	c, _ = a.Store.Context("new")
	assert.Equal(t, 7, c.RecommendationCounter)
	assert.Equal(t, domain.IntentNone, c.LastIntent)
}

func TestHandleMessage_OrderFlow(t *testing.T) {
	rec := &memoryRecorder{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := newAssistant(t, Options{Recorder: rec, Now: func() time.Time { return now }})

	assert.Equal(t, "Отлично!\n\nСуп - 200 руб.\n\nТовар добавлен в ваш заказ", send(t, a, "u1", "хочу суп"))
	send(t, a, "u1", "закажу чай")

	cartReply := send(t, a, "u1", "корзина")
	assert.True(t, strings.HasPrefix(cartReply, "Ваша корзина:\n\n🛒 *Ваша корзина*:"))
	assert.Contains(t, cartReply, "*Итого: 300 руб.*")

	receipt := send(t, a, "u1", "оформи заказ")
	assert.True(t, strings.HasPrefix(receipt, "Оформляю.\n\n✅ *Ваш заказ оформлен!*"))
	assert.Empty(t, a.Carts.Items("u1"))

	require.Len(t, rec.orders, 1)
	o := rec.orders[0]
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, 300, o.Total)
	assert.Len(t, o.Items, 2)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, now, o.CreatedAt)

	assert.Equal(t, "Оформляю.\n\n"+"Ваша корзина пуста. Добавьте что-нибудь из меню.", send(t, a, "u1", "оформи заказ"))
	assert.Len(t, rec.orders, 1, "empty checkout is not journaled")
}

func TestHandleMessage_UnresolvedDishAsksToClarify(t *testing.T) {
	a := newAssistant(t, Options{})

	assert.Equal(t, OrderClarification, send(t, a, "u1", "хочу"))
	assert.Empty(t, a.Carts.Items("u1"))
	assert.Equal(t, PriceClarification, send(t, a, "u1", "цена"))
}

func TestHandleMessage_Price(t *testing.T) {
	a := newAssistant(t, Options{})
	want := "Сейчас скажу.\n\nТорт - 150 руб.\nСладкий\n\nЕсли хотите заказать это - просто напишите об этом"
	assert.Equal(t, want, send(t, a, "u1", "сколько стоит торт"))
	assert.Empty(t, a.Carts.Items("u1"))
}

func TestHandleMessage_MenuAndClear(t *testing.T) {
	a := newAssistant(t, Options{})

	menu := send(t, a, "u1", "покажи меню")
	assert.Equal(t, "Вот меню:\n\n"+a.ShowMenu(), menu)

	send(t, a, "u1", "хочу торт")
	assert.Equal(t, "Очищено.", send(t, a, "u1", "очисти корзину"))
	assert.Empty(t, a.Carts.Items("u1"))
}

func TestHandleMessage_FallbackThenFailure(t *testing.T) {
	a := newAssistant(t, Options{})

	assert.Equal(t, "Отлично, а у вас?", send(t, a, "u1", "Как дела?"))
	assert.Equal(t, "Не понял.", send(t, a, "u1", "ъъъ"))
}

func TestFollowUp_Apology(t *testing.T) {
	a := newAssistant(t, Options{})

	_, ok := a.FollowUp("u1")
	assert.False(t, ok, "unknown user gets no follow-up")

	send(t, a, "u1", "ужасно")
	s, err := a.SentimentOf("u1")
	require.NoError(t, err)
	assert.InDelta(t, -0.5, s, 1e-9)
	_, ok = a.FollowUp("u1")
	assert.False(t, ok)

	send(t, a, "u1", "ужасно ужасно")
	text, ok := a.FollowUp("u1")
	assert.True(t, ok)
	assert.Equal(t, ApologyText, text)
}

func TestSentimentOf_UnknownUser(t *testing.T) {
	a := newAssistant(t, Options{})
	_, err := a.SentimentOf("ghost")
	assert.ErrorIs(t, err, session.ErrUnknownUser)
}

func TestDirectOperations(t *testing.T) {
	rec := &memoryRecorder{}
	a := newAssistant(t, Options{Recorder: rec})

	assert.Equal(t, "Ваша корзина пуста.", a.ShowCart("u1"))
	assert.Equal(t, "Корзина очищена", a.ClearCart("u1"))

	text, err := a.CompleteOrder(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ваша корзина пуста. Добавьте что-нибудь из меню.", text)

	send(t, a, "u1", "хочу суп")
	text, err = a.CompleteOrder(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, text, "• Суп - 200 руб.")
	assert.Len(t, rec.orders, 1)

	assert.True(t, strings.HasPrefix(a.ShowMenu(), "🍽 *Наше меню*:\n\n*Суп*:\nГорячий\nЦена: 200 руб.\n\n"))
	assert.True(t, strings.HasSuffix(a.ShowMenu(), "Если хотите что-то заказать, то напишите об этом"))
}

func TestRecorderFailureDoesNotFailReply(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	rec := &memoryRecorder{err: errors.New("disk full")}
	a := newAssistant(t, Options{Recorder: rec, Logger: zap.New(core)})

	send(t, a, "u1", "хочу суп")
	reply := send(t, a, "u1", "оформи заказ")
	assert.Contains(t, reply, "Ваш заказ оформлен")
	assert.Equal(t, 1, logs.FilterMessage("recording order failed").Len())
}

func TestHandleMessage_LogsTurn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := newAssistant(t, Options{Logger: zap.New(core)})

	send(t, a, "u1", "Привет!")
	send(t, a, "u2", "Привет!")

	turns := logs.FilterMessage("turn handled").AllUntimed()
	require.Len(t, turns, 2)
	last := turns[1].ContextMap()
	assert.Equal(t, "u2", last["user"])
	assert.Equal(t, "intent", last["route"])
	assert.EqualValues(t, 2, last["users"])
}

func TestHandleMessage_ConcurrentUsers(t *testing.T) {
	defer goleak.VerifyNone(t)
	a := newAssistant(t, Options{Recorder: &memoryRecorder{}})

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for _, msg := range []string{"привет", "хочу суп", "хочу торт", "корзина", "оформи заказ"} {
				_, err := a.HandleMessage(context.Background(), user, msg)
				assert.NoError(t, err)
			}
		}(fmt.Sprintf("user-%d", i))
	}
	wg.Wait()

	assert.Equal(t, 12, a.Store.Len())
	for i := 0; i < 12; i++ {
		c, err := a.Store.Context(fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		assert.Equal(t, domain.InitialRecommendationCounter+5, c.RecommendationCounter)
	}
}
