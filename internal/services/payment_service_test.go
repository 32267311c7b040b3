package services

import "testing"

func TestNewOrderCode(t *testing.T) {
	const jsSafeMax = int64(9007199254740991)

	seen := make(map[int64]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code := newOrderCode()
		if code <= 0 || code > jsSafeMax {
			t.Fatalf("order code %d outside (0, %d]", code, jsSafeMax)
		}
		if _, dup := seen[code]; dup {
			t.Fatalf("order code %d repeated within one batch", code)
		}
		seen[code] = struct{}{}
	}
}
