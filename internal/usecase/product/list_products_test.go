package product

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/showcase-ms-go/internal/mock"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

func TestListProducts_Routing(t *testing.T) {
	tests := []struct {
		name     string
		q        port.ProductQuery
		wantList string
		wantArg  string
	}{
		{name: "all active", q: port.ProductQuery{}, wantList: "active"},
		{name: "category", q: port.ProductQuery{Category: "shoes"}, wantList: "category", wantArg: "shoes"},
		{name: "brand", q: port.ProductQuery{BrandID: "acme"}, wantList: "brand", wantArg: "acme"},
		{name: "featured", q: port.ProductQuery{Featured: true}, wantList: "featured"},
		{name: "featured wins", q: port.ProductQuery{Featured: true, Category: "shoes"}, wantList: "featured"},
		{name: "brand over category", q: port.ProductQuery{BrandID: "acme", Category: "shoes"}, wantList: "brand", wantArg: "acme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.ProductRepo{ListOut: []model.Product{{Name: "Runner"}}}
			out, err := NewProductLister(repo).ListProducts(context.Background(), tc.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 1 {
				t.Errorf("len = %d", len(out))
			}
			if repo.LastList != tc.wantList || repo.ListArg != tc.wantArg {
				t.Errorf("called %s(%q); want %s(%q)", repo.LastList, repo.ListArg, tc.wantList, tc.wantArg)
			}
		})
	}
}

func TestListProducts_Error(t *testing.T) {
	repo := &mock.ProductRepo{ListErr: errors.New("db down")}
	if _, err := NewProductLister(repo).ListProducts(context.Background(), port.ProductQuery{}); err == nil {
		t.Fatal("expected error")
	}
}
