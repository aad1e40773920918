package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParsePlaceID tests place ID parsing
func TestParsePlaceID(t *testing.T) {
	tests := []struct {
		input    string
		expected PlaceID
		hasError bool
	}{
		{"12", PlaceID("12"), false},
		{"Sinhagad Fort_0", PlaceID("Sinhagad Fort_0"), false},
		{" 7", PlaceID(" 7"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParsePlaceID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

func TestDomainErrorHelpers(t *testing.T) {
	err := NewDataUnavailableError("places.csv", nil)
	if !IsDataUnavailable(err) {
		t.Errorf("expected data unavailable, got %v", err)
	}
	if IsNotFoundError(err) {
		t.Error("data unavailable must not match not found")
	}
	if !IsNotFoundError(NewNotFoundError("place", "42")) {
		t.Error("expected not found")
	}
	if !IsNotFoundError(ErrPlaceNotFound) {
		t.Error("ErrPlaceNotFound must wrap ErrNotFound")
	}
}

func TestHashRows(t *testing.T) {
	a := HashRows([]map[string]string{{"id": "1", "category": "Nature"}, {"id": "2"}})
	b := HashRows([]map[string]string{{"category": "Nature", "id": "1"}, {"id": "2"}})
	swapped := HashRows([]map[string]string{{"id": "2"}, {"id": "1", "category": "Nature"}})

	if a != b {
		t.Errorf("column order changed the hash: %s vs %s", a, b)
	}
	if a == swapped {
		t.Error("row order must change the hash")
	}
	if len(a.Short()) != 12 {
		t.Errorf("expected 12 character short hash, got %q", a.Short())
	}
}
