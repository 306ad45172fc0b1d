package note

import (
	"reflect"
	"testing"
)

func TestMetadataOrderAndSet(t *testing.T) {
	var m Metadata
	m.Set("Created", Date("2024-05-02"))
	m.Set("Title", String("Pytexas 2024"))
	m.Set("tags", String("conference"))

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"Created", "Title", "tags"}) {
		t.Errorf("Keys() = %v, want insertion order", got)
	}

	// Replacing a key keeps its position.
	m.Set("Title", String("Renamed"))
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"Created", "Title", "tags"}) {
		t.Errorf("Keys() after replace = %v, want unchanged order", got)
	}
	v, ok := m.Get("Title")
	if !ok {
		t.Fatal("Get(Title) not found")
	}
	if s, _ := v.AsString(); s != "Renamed" {
		t.Errorf("Title = %q, want %q", s, "Renamed")
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestValueAccessors(t *testing.T) {
	if s, ok := String("hi").AsString(); !ok || s != "hi" {
		t.Errorf("String.AsString = %q, %v", s, ok)
	}
	if d, ok := Date("2024-05-02").AsDate(); !ok || d != "2024-05-02" {
		t.Errorf("Date.AsDate = %q, %v", d, ok)
	}
	// Dates read as strings too.
	if s, ok := Date("2024-05-02").AsString(); !ok || s != "2024-05-02" {
		t.Errorf("Date.AsString = %q, %v", s, ok)
	}
	if n, ok := Number(3.5).AsNumber(); !ok || n != 3.5 {
		t.Errorf("Number.AsNumber = %v, %v", n, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Bool.AsBool = %v, %v", b, ok)
	}
	if _, ok := Number(1).AsString(); ok {
		t.Error("Number.AsString should fail")
	}
	if !Null().IsNull() {
		t.Error("Null().IsNull() = false")
	}
	if !String("x").IsString() || Number(1).IsString() {
		t.Error("IsString misreports")
	}
}

func TestValueIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), true},
		{"empty string", String(""), true},
		{"empty date", Date(""), true},
		{"string", String("x"), false},
		{"date", Date("2024-05-02"), false},
		{"zero number", Number(0), false},
		{"false bool", Bool(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueStringForm(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", String("hello"), "hello"},
		{"date", Date("2024-05-02"), "2024-05-02"},
		{"integral number", Number(2024), "2024"},
		{"fractional number", Number(1.5), "1.5"},
		{"bool", Bool(true), "true"},
		{"null", Null(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.StringForm(); got != tt.want {
				t.Errorf("StringForm() = %q, want %q", got, tt.want)
			}
		})
	}
}
