package parser

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   models.Cell
		want float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"plain int", int64(7), 7},
		{"plain float", 42.5, 42.5},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"decimal comma", "12,5", 12.5},
		{"thousands space and comma", "1 234,50", 1234.5},
		{"padded", "  15  ", 15},
		{"signed", "+5", 5},
		{"garbage", "n/a", 0},
		{"double separator", "12.34,56", 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   models.Cell
		want string
	}{
		{"nil", nil, ""},
		{"trimmed", "  hello  ", "hello"},
		{"int", int64(100), "100"},
		{"float", 200.5, "200.5"},
		{"whole float", float64(100), "100"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestClockLabel(t *testing.T) {
	tests := []struct {
		name string
		in   models.Cell
		want string
	}{
		{"noon fraction", 0.5, "12:00"},
		{"evening fraction", 0.770833333, "18:30"},
		{"date value", time.Date(2025, 9, 5, 18, 30, 0, 0, time.UTC), "18:30"},
		{"raw text", "19:30", "19:30"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockLabel(tt.in))
		})
	}
}
