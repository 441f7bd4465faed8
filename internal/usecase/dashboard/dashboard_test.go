package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/showcase-ms-go/internal/mock"
	"github.com/fhuszti/showcase-ms-go/internal/model"
)

func TestGetDashboard(t *testing.T) {
	products := &mock.ProductRepo{Active: 7, Inactive: 2}
	events := &mock.EventRepo{CountOut: 3}
	certs := &mock.CertificationRepo{CountOut: map[model.CertificationStatus]int{
		model.CertificationStatusPending:  4,
		model.CertificationStatusApproved: 1,
		model.CertificationStatusRejected: 0,
	}}
	medias := &mock.MediaRepo{CountOut: map[model.MediaStatus]int{
		model.MediaStatusCompleted: 12,
	}}

	out, err := NewDashboardGetter(products, events, certs, medias).GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ActiveProducts != 7 || out.InactiveProducts != 2 || out.Events != 3 {
		t.Errorf("out = %+v", out)
	}
	if out.Certifications[model.CertificationStatusPending] != 4 {
		t.Errorf("certifications = %v", out.Certifications)
	}
	if out.Medias[model.MediaStatusCompleted] != 12 {
		t.Errorf("medias = %v", out.Medias)
	}
}

func TestGetDashboard_Errors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name     string
		products *mock.ProductRepo
		events   *mock.EventRepo
		certs    *mock.CertificationRepo
		medias   *mock.MediaRepo
	}{
		{"products", &mock.ProductRepo{CountErr: boom}, &mock.EventRepo{}, &mock.CertificationRepo{}, &mock.MediaRepo{}},
		{"events", &mock.ProductRepo{}, &mock.EventRepo{CountErr: boom}, &mock.CertificationRepo{}, &mock.MediaRepo{}},
		{"certifications", &mock.ProductRepo{}, &mock.EventRepo{}, &mock.CertificationRepo{CountErr: boom}, &mock.MediaRepo{}},
		{"medias", &mock.ProductRepo{}, &mock.EventRepo{}, &mock.CertificationRepo{}, &mock.MediaRepo{CountErr: boom}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDashboardGetter(tc.products, tc.events, tc.certs, tc.medias).GetDashboard(context.Background())
			if !errors.Is(err, boom) {
				t.Fatalf("err = %v; want boom", err)
			}
		})
	}
}
