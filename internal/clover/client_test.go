package clover

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bitewise/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoriesBody = `{"elements":[{"id":"C1","name":"Pastry"},{"id":"C2","name":"Coffee"}]}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestClient_ListCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/merchants/M1/categories", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(categoriesBody))
	})

	categories, err := c.ListCategories(context.Background(), "M1", "tok")
	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: "C1", Name: "Pastry"}, {ID: "C2", Name: "Coffee"}}, categories)
}

func TestClient_ListCategories_UpstreamStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"401 Unauthorized"}`))
	})

	_, err := c.ListCategories(context.Background(), "M1", "bad")
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, http.StatusUnauthorized, up.Status)
	// Only CreateItem extracts the message field.
	assert.Equal(t, `Clover API error: {"message":"401 Unauthorized"}`, up.Detail)
}

func TestClient_ListCategories_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.ListCategories(context.Background(), "M1", "tok")
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, http.StatusInternalServerError, up.Status)
}

func TestClient_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, time.Second)

	_, err := c.GetItemDetail(context.Background(), "M1", "tok", "item-42")
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, http.StatusInternalServerError, up.StatusCode())
}

func TestClient_ListItemsInCategory_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"Coffee", "coffee", "COFFEE"} {
		t.Run(name, func(t *testing.T) {
			var itemCalls []string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/v3/merchants/M1/categories":
					w.Write([]byte(categoriesBody))
				case "/v3/merchants/M1/categories/C2/items":
					itemCalls = append(itemCalls, r.URL.Path)
					w.Write([]byte(`{"elements":[{"id":"item-42","name":"Latte"},{"id":"item-43","name":"Mocha"}]}`))
				default:
					t.Errorf("unexpected path: %s", r.URL.Path)
					w.WriteHeader(http.StatusNotFound)
				}
			})

			items, err := c.ListItemsInCategory(context.Background(), "M1", "tok", name)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, "item-42", items[0].ID())
			assert.Equal(t, []string{"/v3/merchants/M1/categories/C2/items"}, itemCalls)
		})
	}
}

func TestClient_ListItemsInCategory_CategoryNotFound(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(categoriesBody))
	})

	_, err := c.ListItemsInCategory(context.Background(), "M1", "tok", "Tea")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Category 'Tea' not found.", err.Error())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GetItemDetail_ExpandsCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/merchants/M1/items/item-42", r.URL.Path)
		assert.Equal(t, "categories", r.URL.Query().Get("expand"))
		w.Write([]byte(`{"id":"item-42","name":"Latte","price":450,"categories":{"elements":[{"id":"C2","name":"Coffee"}]}}`))
	})

	item, err := c.GetItemDetail(context.Background(), "M1", "tok", "item-42")
	require.NoError(t, err)
	assert.Equal(t, "item-42", item.ID())
	assert.Equal(t, []Category{{ID: "C2", Name: "Coffee"}}, item.Categories())
	assert.Equal(t, float64(450), item["price"])
}

func TestClient_CreateItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/merchants/M1/items", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Flat White","price":500}`, string(body))
		w.Write([]byte(`{"id":"item-99","name":"Flat White","price":500}`))
	})

	item, err := c.CreateItem(context.Background(), "M1", "tok", map[string]any{"name": "Flat White", "price": 500})
	require.NoError(t, err)
	assert.Equal(t, "item-99", item.ID())
}

func TestClient_CreateItem_ExtractsMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Name is required"}`))
	})

	_, err := c.CreateItem(context.Background(), "M1", "tok", map[string]any{})
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, http.StatusBadRequest, up.Status)
	assert.Equal(t, "Clover API error: Name is required", up.Detail)
}

func TestClient_CreateItem_FallsBackToBodyText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`gateway down`))
	})

	_, err := c.CreateItem(context.Background(), "M1", "tok", map[string]any{"name": "x"})
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, "Clover API error: gateway down", up.Detail)
}

func TestClient_GetMerchant(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/merchants/M1", r.URL.Path)
		w.Write([]byte(`{"id":"M1","name":"Bean There","email":"hi@bean.test","currency":"USD"}`))
	})

	m, err := c.GetMerchant(context.Background(), "M1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Bean There", m.Name)
	assert.Equal(t, "USD", m.Currency)
}

func TestItem_Categories_Missing(t *testing.T) {
	assert.Empty(t, Item{"id": "x"}.Categories())
	assert.Empty(t, Item{"categories": map[string]any{"elements": []any{}}}.Categories())
	assert.Equal(t, "", Item{}.ID())
	assert.Equal(t, "42", Item{"id": float64(42)}.ID())
}

func TestClient_ListItems_PassesLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/merchants/M1/items", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"elements":[{"id":"item-1","name":"Scone"},{"id":"item-2","name":"Latte"}]}`))
	})

	items, err := c.ListItems(context.Background(), "M1", "tok", 25)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-2", items[1].ID())
}

func TestClient_ListOrders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/merchants/M1/orders", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"elements":[{"id":"ord-1","total":1250,"state":"open"}]}`))
	})

	orders, err := c.ListOrders(context.Background(), "M1", "tok", 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID())
	assert.Equal(t, "open", orders[0]["state"])
}

func TestClient_ListOrders_NoLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"elements":[]}`))
	})

	orders, err := c.ListOrders(context.Background(), "M1", "tok", 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_CreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/merchants/M1/orders", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title":"Table 4","state":"open"}`, string(body))
		w.Write([]byte(`{"id":"ord-9","title":"Table 4","state":"open"}`))
	})

	order, err := c.CreateOrder(context.Background(), "M1", "tok", map[string]any{"title": "Table 4", "state": "open"})
	require.NoError(t, err)
	assert.Equal(t, "ord-9", order.ID())
}

func TestClient_CreateOrder_ExtractsMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Invalid order state"}`))
	})

	_, err := c.CreateOrder(context.Background(), "M1", "tok", map[string]any{"state": "bogus"})
	var up *apperrors.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, http.StatusUnprocessableEntity, up.Status)
	assert.Equal(t, "Clover API error: Invalid order state", up.Detail)
}
