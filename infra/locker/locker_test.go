package locker

import "testing"

func TestTryAcquireRelease(t *testing.T) {
	l := New()

	if !l.TryAcquire(1) {
		t.Fatal("first acquire should succeed")
	}
	if l.TryAcquire(1) {
		t.Fatal("second acquire of the same run should fail")
	}
	if !l.TryAcquire(2) {
		t.Fatal("acquire of a different run should succeed")
	}

	l.Release(1)
	if !l.TryAcquire(1) {
		t.Fatal("acquire after release should succeed")
	}
}
