package request

import (
	"testing"

	"pesquisa_precos/internal/domain/pricing"
)

func TestSearchRequest_ResolveSort(t *testing.T) {
	cases := []struct {
		in   string
		want pricing.SortMode
	}{
		{"value_asc", pricing.SortValueAsc},
		{"value_desc", pricing.SortValueDesc},
		{"distance_asc", pricing.SortDistanceAsc},
		{"distance_desc", pricing.SortDistanceDesc},
		{"relevance", pricing.SortRelevance},
		{"", pricing.SortRelevance},
		{"garbage", pricing.SortRelevance},
	}
	for _, tc := range cases {
		r := SearchRequest{Sort: tc.in}
		if got := r.ResolveSort(); got != tc.want {
			t.Fatalf("sort %q: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestSearchRequest_ToQueryTrims(t *testing.T) {
	r := SearchRequest{Term: " caneta ", UF: " SP ", Municipality: " Campinas ", Page: 2, PageSize: 25}
	q := r.ToQuery()
	if q.Term != "caneta" || q.UF != "SP" || q.Municipality != "Campinas" {
		t.Fatalf("unexpected query: %+v", q)
	}
	if q.Page != 2 || q.PageSize != 25 {
		t.Fatalf("unexpected pagination: %+v", q)
	}
}

func TestSearchRequest_ToFilterState(t *testing.T) {
	min := 10.0
	r := SearchRequest{Units: []string{"unidade"}, MinValue: &min, Sort: "value_desc", PeriodMonths: 6}
	f := r.ToFilterState()
	if len(f.SelectedUnits) != 1 || f.SelectedUnits[0] != "unidade" {
		t.Fatalf("unexpected units: %+v", f)
	}
	if f.MinValue == nil || *f.MinValue != 10 || f.MaxValue != nil {
		t.Fatalf("unexpected bounds: %+v", f)
	}
	if f.Sort != pricing.SortValueDesc || f.PeriodMonths != 6 {
		t.Fatalf("unexpected sort/period: %+v", f)
	}
}
