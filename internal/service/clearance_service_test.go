package service

import (
	"testing"

	"github.com/campushq/campuscore-backend/internal/model"
)

func items(statuses ...model.ItemStatus) []model.ClearanceItem {
	out := make([]model.ClearanceItem, len(statuses))
	for i, s := range statuses {
		out[i] = model.ClearanceItem{Status: s}
	}
	return out
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name  string
		items []model.ClearanceItem
		want  model.ClearanceStatus
	}{
		{
			name:  "all pending",
			items: items(model.ItemPending, model.ItemPending, model.ItemPending),
			want:  model.ClearancePending,
		},
		{
			name:  "some approved",
			items: items(model.ItemApproved, model.ItemPending, model.ItemPending),
			want:  model.ClearanceInProgress,
		},
		{
			name:  "all approved",
			items: items(model.ItemApproved, model.ItemApproved, model.ItemApproved),
			want:  model.ClearanceCleared,
		},
		{
			name:  "one rejection overrides approvals",
			items: items(model.ItemApproved, model.ItemRejected, model.ItemApproved),
			want:  model.ClearanceRejected,
		},
		{
			name:  "rejection with pendings",
			items: items(model.ItemPending, model.ItemRejected),
			want:  model.ClearanceRejected,
		},
		{
			name:  "no items",
			items: nil,
			want:  model.ClearancePending,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.items); got != tc.want {
				t.Errorf("DeriveStatus = %s, want %s", got, tc.want)
			}
		})
	}
}
