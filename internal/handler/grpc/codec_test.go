package grpc

import (
	"testing"

	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_UserIDNeverOnWire(t *testing.T) {
	data, err := jsonCodec{}.Marshal(&models.PullRequest{ClientGroupID: "cg1", UserID: "u1"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "u1")

	var got models.PullRequest
	require.NoError(t, jsonCodec{}.Unmarshal([]byte(`{"clientGroupID":"cg1","cookie":7}`), &got))
	assert.Equal(t, "cg1", got.ClientGroupID)
	require.NotNil(t, got.Cookie)
	assert.Equal(t, int64(7), *got.Cookie)
}
