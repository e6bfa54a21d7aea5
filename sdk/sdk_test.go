package sdk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressValidation(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("").IsValid())
	// the pipe is reserved as the drop id delimiter
	assert.False(t, Address("hive:al|ce").IsValid())
	assert.False(t, Address("hive:al\nce").IsValid())
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:conference").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:init").Domain())
}

func TestPublicKeyCodec(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 7
	key := MockPublicKeyFromSeed(seed)
	require.True(t, strings.HasPrefix(key, Ed25519KeyPrefix))

	raw := DecodePublicKey(key)
	require.Len(t, raw, 32)
	assert.Equal(t, key, EncodePublicKey(raw))

	assert.Nil(t, DecodePublicKey("garbage"))
	assert.Nil(t, DecodePublicKey(""))
}

func TestSignatureVerification(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 9
	key := MockPublicKeyFromSeed(seed)
	sig := MockSignature(seed, "hive:alice,"+key)

	assert.True(t, VerifySignature(key, "hive:alice,"+key, sig))
	// any drift in message or key must fail
	assert.False(t, VerifySignature(key, "hive:bob,"+key, sig))
	other := make([]byte, 32)
	other[0] = 10
	assert.False(t, VerifySignature(MockPublicKeyFromSeed(other), "hive:alice,"+key, sig))
	assert.False(t, VerifySignature(key, "hive:alice,"+key, sig[:10]))
}

func TestMockExecuteRollsBackOnAbort(t *testing.T) {
	MockReset()
	StateSetObject("kept", "1")

	err := MockExecute(func() {
		StateSetObject("kept", "2")
		StateSetObject("new", "x")
		Log("should vanish")
		Abort("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	val := StateGetObject("kept")
	require.NotNil(t, val)
	assert.Equal(t, "1", *val)
	assert.Nil(t, StateGetObject("new"))
	assert.Empty(t, MockLogs())
}
