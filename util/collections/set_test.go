package collections

import "testing"

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 2, 3)

	if len(set) != 3 {
		t.Fatalf("Expected 3 distinct elements, got %d", len(set))
	}

	tests := []struct {
		name     string
		value    int
		expected bool
	}{
		{"Present", 1, true},
		{"Duplicate collapsed", 2, true},
		{"Absent", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Contains(tt.value); got != tt.expected {
				t.Errorf("Contains(%d) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}

	set.Remove(1)
	set.Remove(42)
	if set.Contains(1) {
		t.Error("Expected 1 to be removed")
	}
	if len(set) != 2 {
		t.Errorf("Expected 2 elements after removal, got %d", len(set))
	}
}
