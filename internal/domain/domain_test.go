package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaListAcceptsObjectOrArray(t *testing.T) {
	var single struct {
		Media MediaList `json:"media"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"media":{"media_url":"/a.png","type":"image"}}`), &single))
	require.Len(t, single.Media, 1)
	assert.Equal(t, "/a.png", single.Media[0].URL)

	var many struct {
		Media MediaList `json:"media"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"media":[{"media_url":"/v.mp4","type":"VIDEO"},{"media_url":"/b.png"}]}`), &many))
	require.Len(t, many.Media, 2)
	assert.True(t, many.Media[0].IsVideo())
	assert.Equal(t, MediaKind(""), many.Media[1].Type)

	var none struct {
		Media MediaList `json:"media"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"media":null}`), &none))
	_, ok := none.Media.First()
	assert.False(t, ok)
}

func TestParseMediaKind(t *testing.T) {
	assert.Equal(t, MediaVideo, ParseMediaKind("Video"))
	assert.Equal(t, MediaImage, ParseMediaKind("photo"))
	assert.Equal(t, MediaKind(""), ParseMediaKind("  "))
}

func TestSignInResultUserID(t *testing.T) {
	var numeric SignInResult
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":42}`), &numeric))
	assert.Equal(t, "42", numeric.UserID)

	var text SignInResult
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u-7"}`), &text))
	assert.Equal(t, "u-7", text.UserID)
}
