package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartsvc "github.com/customcabinetco/storefront-backend/internal/cart"
	"github.com/customcabinetco/storefront-backend/internal/catalog"
	"github.com/customcabinetco/storefront-backend/internal/pricing"
	"github.com/customcabinetco/storefront-backend/pkg/enums"
	pkgerrors "github.com/customcabinetco/storefront-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type stubCart struct {
	items   []cartsvc.LineItem
	err     error
	added   *cartsvc.LineItem
	cleared bool
}

func (s *stubCart) Items(ctx context.Context) ([]cartsvc.LineItem, error) {
	return s.items, s.err
}

func (s *stubCart) Add(ctx context.Context, item cartsvc.LineItem) ([]cartsvc.LineItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.added = &item
	s.items = append(s.items, item)
	return s.items, nil
}

func (s *stubCart) UpdateQuantity(ctx context.Context, index int, rawQty string) ([]cartsvc.LineItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items[index].Qty = cartsvc.NormalizeQuantity(rawQty)
	return s.items, nil
}

func (s *stubCart) Remove(ctx context.Context, index int) ([]cartsvc.LineItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return s.items, nil
}

func (s *stubCart) Clear(ctx context.Context) error {
	s.cleared = true
	return s.err
}

func testLineItem() cartsvc.LineItem {
	return cartsvc.LineItem{
		ProductID: "wall-cabinet",
		Name:      "Wall Cabinet",
		Finish:    enums.FinishPaintGrade,
		Size:      pricing.Dimensions{W: 32, H: 32, D: 21},
		Qty:       2,
		UnitPrice: decimal.NewFromInt(200),
	}
}

func indexRequest(method, target, index, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("index", index)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCartFetchSuccess(t *testing.T) {
	handler := CartFetch(&stubCart{items: []cartsvc.LineItem{testLineItem()}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data CartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("expected 1 item got %d", len(envelope.Data.Items))
	}
	if !envelope.Data.Subtotal.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected subtotal: %s", envelope.Data.Subtotal)
	}
}

func TestCartFetchEmptySerializesItems(t *testing.T) {
	handler := CartFetch(&stubCart{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", resp.Body.String())
	}
}

func TestCartItemAddSuccess(t *testing.T) {
	stub := &stubCart{}
	handler := CartItemAdd(stub, stubCatalog{products: []catalog.Product{testProduct()}}, nil)

	body := `{"product_id":"wall-cabinet","finish":"Stain Grade","size":{"w":"40","h":"32","d":"21"},"qty":"2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.added == nil {
		t.Fatalf("expected Add to be invoked")
	}
	if stub.added.Qty != 2 {
		t.Fatalf("unexpected qty: %d", stub.added.Qty)
	}
	if !stub.added.UnitPrice.Equal(decimal.NewFromInt(322)) {
		t.Fatalf("unexpected unit price: %s", stub.added.UnitPrice)
	}
}

func TestCartItemAddUnknownProduct(t *testing.T) {
	handler := CartItemAdd(&stubCart{}, stubCatalog{}, nil)

	body := `{"product_id":"ghost","finish":"Paint Grade","size":{"w":"32","h":"32","d":"21"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartQuantityUpdateSuccess(t *testing.T) {
	stub := &stubCart{items: []cartsvc.LineItem{testLineItem()}}
	handler := CartQuantityUpdate(stub, nil)

	req := indexRequest(http.MethodPatch, "/api/v1/cart/items/0", "0", `{"qty":"5"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if stub.items[0].Qty != 5 {
		t.Fatalf("unexpected qty: %d", stub.items[0].Qty)
	}
}

func TestCartQuantityUpdateBadIndex(t *testing.T) {
	handler := CartQuantityUpdate(&stubCart{}, nil)

	req := indexRequest(http.MethodPatch, "/api/v1/cart/items/abc", "abc", `{"qty":"5"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartItemRemoveOutOfRange(t *testing.T) {
	stub := &stubCart{err: pkgerrors.New(pkgerrors.CodeValidation, "cart index out of range")}
	handler := CartItemRemove(stub, nil)

	req := indexRequest(http.MethodDelete, "/api/v1/cart/items/9", "9", "")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartClearSuccess(t *testing.T) {
	stub := &stubCart{items: []cartsvc.LineItem{testLineItem()}}
	handler := CartClear(stub, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !stub.cleared {
		t.Fatalf("expected Clear to be invoked")
	}
	if !strings.Contains(resp.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", resp.Body.String())
	}
}
