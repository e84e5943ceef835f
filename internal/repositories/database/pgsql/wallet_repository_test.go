package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockOrder(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected []string
	}{
		{
			name:     "already ordered",
			a:        "0a6b9f2c-1111-4c62-9be5-000000000001",
			b:        "f91c2f37-2222-41f0-9be5-000000000002",
			expected: []string{"0a6b9f2c-1111-4c62-9be5-000000000001", "f91c2f37-2222-41f0-9be5-000000000002"},
		},
		{
			name:     "reversed input yields same order",
			a:        "f91c2f37-2222-41f0-9be5-000000000002",
			b:        "0a6b9f2c-1111-4c62-9be5-000000000001",
			expected: []string{"0a6b9f2c-1111-4c62-9be5-000000000001", "f91c2f37-2222-41f0-9be5-000000000002"},
		},
		{
			name:     "equal ids collapse to a single lock",
			a:        "0a6b9f2c-1111-4c62-9be5-000000000001",
			b:        "0a6b9f2c-1111-4c62-9be5-000000000001",
			expected: []string{"0a6b9f2c-1111-4c62-9be5-000000000001"},
		},
		{
			name:     "byte-string comparison, not numeric",
			a:        "10",
			b:        "9",
			expected: []string{"10", "9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lockOrder(tt.a, tt.b))
		})
	}
}

func TestLockOrderSymmetry(t *testing.T) {
	// Both argument orders must produce the identical acquisition sequence;
	// that symmetry is what rules out cyclic waits.
	ids := []string{"a", "b", "c", "zz", "0", "00"}
	for _, x := range ids {
		for _, y := range ids {
			assert.Equal(t, lockOrder(x, y), lockOrder(y, x), "lockOrder(%q,%q)", x, y)
		}
	}
}
