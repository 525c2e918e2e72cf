package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0£"},
		{999, "999£"},
		{1000, "1,000£"},
		{50000, "50,000£"},
		{1234567, "1,234,567£"},
		{-2500, "-2,500£"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.amount))
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-time.Second, "0s"},
		{300 * time.Millisecond, "1s"},
		{2*time.Second + 100*time.Millisecond, "3s"},
		{5 * time.Minute, "5m"},
		{4*time.Minute + 59*time.Second, "4m 59s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
		{2 * time.Hour, "2h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.d))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Rock", TitleCase("rock"))
	assert.Equal(t, "", TitleCase(""))
}
