package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPriceJSON(t *testing.T) {
	tests := []struct {
		price Price
		want  string
	}{
		{0, `"무료"`},
		{44000, `44000`},
		{88000, `88000`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.price)
		if err != nil {
			t.Fatalf("Marshal(%d): %v", tt.price, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%d) = %s, want %s", tt.price, b, tt.want)
		}

		var got Price
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if got != tt.price {
			t.Errorf("Unmarshal(%s) = %d, want %d", b, got, tt.price)
		}
	}
}

func TestPriceUnmarshalLabels(t *testing.T) {
	tests := []struct {
		in   string
		want Price
	}{
		{`"무료"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`"66000원"`, 66000},
		{`"66000"`, 66000},
	}
	for _, tt := range tests {
		var got Price
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}

	var p Price
	if err := json.Unmarshal([]byte(`"비쌈"`), &p); err == nil {
		t.Error("Unmarshal of a non-numeric label should fail")
	}
}

func TestRoadmapModuleWritesFreePriceLabel(t *testing.T) {
	m := RoadmapModule{ID: "1", Title: "기초 역량 강화", Level: LevelBeginner, Price: 0}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"price":"무료"`) {
		t.Errorf("Marshal = %s, want a \"무료\" price", b)
	}
}
