package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Invariant(t *testing.T) {
	tests := []struct {
		name     string
		sess     Session
		complete bool
		empty    bool
	}{
		{"both present", Session{Credential: "Bearer x", Email: "a@b.co"}, true, false},
		{"credential only", Session{Credential: "Bearer x"}, false, false},
		{"email only", Session{Email: "a@b.co"}, false, false},
		{"nothing", Session{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.sess.IsComplete())
			assert.Equal(t, tt.empty, tt.sess.IsEmpty())
		})
	}
}
