package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{3.5 * 1024 * 1024 * 1024, "3.50 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatBytes(tc.in))
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "just booted"},
		{30, "just booted"},
		{60, "1m"},
		{3600, "1h"},
		{90061, "1d 1h 1m"},
		{86400 * 3, "3d"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatUptime(tc.in))
	}
}

func TestLoadVerdict(t *testing.T) {
	assert.Equal(t, "running smoothly", loadVerdict(0.5))
	assert.Equal(t, "load elevated", loadVerdict(1.5))
	assert.Equal(t, "overloaded", loadVerdict(4.2))
}

func TestShortImage(t *testing.T) {
	assert.Equal(t, "nginx:latest", shortImage("docker.io/library/nginx:latest"))
	assert.Equal(t, "redis:7", shortImage("redis:7"))
	assert.Len(t, shortImage("registry.example.com/a-very-long-image-name-with-tag:v1.2.3"), 20)
}
