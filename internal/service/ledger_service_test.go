package service

import (
	"testing"
	"time"
)

func TestHoursSince(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		last *time.Time
		want int64
	}{
		{"never regenerated counts as one hour", nil, 1},
		{"half an hour", tptr(now.Add(-30 * time.Minute)), 0},
		{"just under an hour", tptr(now.Add(-time.Hour + time.Second)), 0},
		{"exactly one hour", tptr(now.Add(-time.Hour)), 1},
		{"two hours", tptr(now.Add(-2 * time.Hour)), 2},
		{"two and a half hours floors", tptr(now.Add(-150 * time.Minute)), 2},
	}

	for _, tc := range cases {
		if got := hoursSince(tc.last, now); got != tc.want {
			t.Fatalf("%s: hoursSince = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestRegenBalance(t *testing.T) {
	cases := []struct {
		name    string
		balance int64
		hours   int64
		want    int64
	}{
		{"one hour from zero", 0, 1, 100},
		{"two hours from zero fills storage", 0, 2, 200},
		{"five hours from 150 caps", 150, 5, 200},
		{"already full stays full", 200, 3, 200},
		{"partial refill", 50, 1, 150},
	}

	for _, tc := range cases {
		if got := regenBalance(tc.balance, tc.hours); got != tc.want {
			t.Fatalf("%s: regenBalance = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestRegenBalanceNeverExceedsCap(t *testing.T) {
	for hours := int64(1); hours <= 48; hours++ {
		for _, balance := range []int64{0, 1, 99, 100, 199, 200} {
			got := regenBalance(balance, hours)
			if got < balance || got > MaxCharStorage {
				t.Fatalf("regenBalance(%d, %d) = %d; out of [balance, cap]", balance, hours, got)
			}
		}
	}
}

func tptr(t time.Time) *time.Time { return &t }
