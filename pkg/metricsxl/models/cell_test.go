package models

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		input    string
		expected CellValue
	}{
		{"123", Number(123)},
		{"123.45", Number(123.45)},
		{"-100", Number(-100)},
		{"0.0001", Number(0.0001)},
		{"NA", NA()},
		{"hello", Text("hello")},
		{"", Text("")},
		{"TRUE", Text("TRUE")},
	}

	for _, tt := range tests {
		result := Coerce(tt.input)
		if result != tt.expected {
			t.Errorf("Coerce(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name   string
		v, u   CellValue
		less   bool
		ok     bool
	}{
		{"number below", Number(1), Number(2), true, true},
		{"number above", Number(3), Number(2), false, true},
		{"equal numbers", Number(2), Number(2), false, true},
		{"text left", Text("1"), Number(2), false, false},
		{"text right", Number(1), Text("2"), false, false},
		{"na left", NA(), Number(2), false, false},
		{"na right", Number(1), NA(), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			less, ok := tt.v.Less(tt.u)
			if less != tt.less || ok != tt.ok {
				t.Errorf("Less() = (%v, %v), expected (%v, %v)", less, ok, tt.less, tt.ok)
			}
			// Greater mirrors Less with the operands swapped.
			greater, ok := tt.u.Greater(tt.v)
			if greater != tt.less || ok != tt.ok {
				t.Errorf("Greater() = (%v, %v), expected (%v, %v)", greater, ok, tt.less, tt.ok)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	tests := []struct {
		v        CellValue
		expected bool
	}{
		{NA(), true},
		{Text(""), true},
		{Text("x"), false},
		{Number(0), false},
	}

	for _, tt := range tests {
		if tt.v.Missing() != tt.expected {
			t.Errorf("Missing(%#v) = %v, expected %v", tt.v, !tt.expected, tt.expected)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v        CellValue
		expected string
	}{
		{Number(100), "100"},
		{Number(0.02), "0.02"},
		{NA(), "NA"},
		{Text("FALSE"), "FALSE"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.expected {
			t.Errorf("String(%#v) = %q, expected %q", tt.v, got, tt.expected)
		}
	}
}
