package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		region     string
		disableSSL bool
		want       string
	}{
		{"aws default region", "", "", false, "https://media.s3.us-east-1.amazonaws.com/videos/a.mp4"},
		{"aws region", "", "eu-west-1", false, "https://media.s3.eu-west-1.amazonaws.com/videos/a.mp4"},
		{"minio plain http", "http://localhost:9000", "us-east-1", true, "http://localhost:9000/media/videos/a.mp4"},
		{"custom https", "https://storage.example.com/", "", false, "https://storage.example.com/media/videos/a.mp4"},
		{"amazonaws endpoint", "https://s3.eu-west-1.amazonaws.com", "eu-west-1", false, "https://media.s3.eu-west-1.amazonaws.com/videos/a.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectURL(tt.endpoint, tt.region, tt.disableSSL, "media", "videos/a.mp4"))
		})
	}
}
