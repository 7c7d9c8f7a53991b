package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
		ok   bool
	}{
		{
			name: "https base",
			base: "https://cdn.example.com",
			want: "https://cdn.example.com/posts/abc.jpg",
			ok:   true,
		},
		{
			name: "trailing slash trimmed",
			base: "https://cdn.example.com/",
			want: "https://cdn.example.com/posts/abc.jpg",
			ok:   true,
		},
		{
			name: "empty base",
			base: "",
			ok:   false,
		},
		{
			name: "non-http base",
			base: "cdn.example.com",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := publicURL(tt.base, "posts/abc.jpg")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTrimsEndpointScheme(t *testing.T) {
	store, err := New(Config{
		Endpoint:    "https://account.r2.cloudflarestorage.com",
		AccessKeyID: "key",
		SecretKey:   "secret",
		UseSSL:      true,
		Bucket:      "lostfound",
	})
	require.NoError(t, err)
	assert.NotNil(t, store.client)
}
