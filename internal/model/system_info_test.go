package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const gib = 1 << 30

func TestNewDiskInfo(t *testing.T) {
	tests := []struct {
		name        string
		total, free uint64
		want        DiskInfo
	}{
		{"truncates percent", 7 * gib, 2 * gib, DiskInfo{Name: "d", UsedGB: 5, TotalGB: 7, Percent: 71}},
		{"even split", 100 * gib, 60 * gib, DiskInfo{Name: "d", UsedGB: 40, TotalGB: 100, Percent: 40}},
		{"free above total saturates", 10 * gib, 11 * gib, DiskInfo{Name: "d", UsedGB: 0, TotalGB: 10, Percent: 0}},
		{"below one gigabyte", gib - 1, 0, DiskInfo{Name: "d", UsedGB: 0, TotalGB: 0, Percent: 0}},
		{"fractional gigabytes truncate", 3*gib + gib/2, gib, DiskInfo{Name: "d", UsedGB: 2, TotalGB: 3, Percent: 66}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDiskInfo("d", tt.total, tt.free))
		})
	}
}

func TestRAMPercent(t *testing.T) {
	assert.Equal(t, 0.0, RAMPercent(0, 0))
	assert.Equal(t, 0.0, RAMPercent(50, 0))
	assert.Equal(t, 25.0, RAMPercent(50, 200))
}

func TestBytesToGB(t *testing.T) {
	assert.Equal(t, 1.5, BytesToGB(gib+gib/2))
}
