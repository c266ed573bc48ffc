package amounts_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/dapp-gateway/internal/amounts"
)

func TestStrip0x(t *testing.T) {
	assert.Equal(t, "deadbeef", amounts.Strip0x("0xdeadbeef"))
	assert.Equal(t, "deadbeef", amounts.Strip0x("0Xdeadbeef"))
	assert.Equal(t, "deadbeef", amounts.Strip0x("deadbeef"))
	assert.Equal(t, "", amounts.Strip0x("0x"))
	assert.Equal(t, "", amounts.Strip0x(""))
}

func TestHexToBig(t *testing.T) {
	v, err := amounts.HexToBig("0x2386f26fc10000")
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", v.String())

	v, err = amounts.HexToBig("ff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), v.Int64())

	// empty and bare prefix parse as zero
	v, err = amounts.HexToBig("")
	require.NoError(t, err)
	assert.True(t, v.Sign() == 0)

	v, err = amounts.HexToBig("0x")
	require.NoError(t, err)
	assert.True(t, v.Sign() == 0)
}

func TestHexToBigLarge(t *testing.T) {
	// a value well beyond 64 bits must survive untruncated
	v, err := amounts.HexToBig("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	expected := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	assert.Zero(t, v.Cmp(expected))
}

func TestHexToBigMalformed(t *testing.T) {
	for _, s := range []string{"0xzz", "hello", "0x12g4", "12 34"} {
		_, err := amounts.HexToBig(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, amounts.ErrMalformedHex), s)
	}
}

func TestHexToUint64(t *testing.T) {
	v, err := amounts.HexToUint64("0x5208")
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), v)

	v, err = amounts.HexToUint64("")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = amounts.HexToUint64("0xnope")
	require.Error(t, err)

	// 65-bit value overflows
	_, err = amounts.HexToUint64("0x10000000000000000")
	require.Error(t, err)
}

func TestHexToUint64RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := r.Uint64()

		v, err := amounts.HexToUint64(fmt.Sprintf("0x%x", n))
		require.NoError(t, err)
		require.Equal(t, n, v)
	}
}

func TestHexToUTF8(t *testing.T) {
	s, err := amounts.HexToUTF8("0x68656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = amounts.HexToUTF8("0xe298ba")
	require.NoError(t, err)
	assert.Equal(t, "☺", s)

	// odd-length hex
	_, err = amounts.HexToUTF8("0x123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, amounts.ErrMalformedHex))

	// valid hex, invalid UTF-8 bytes
	_, err = amounts.HexToUTF8("0xfffe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, amounts.ErrInvalidUTF8))
}

func TestStripLeadingZeros(t *testing.T) {
	assert.Equal(t, "1a", amounts.StripLeadingZeros("0000001a"))
	assert.Equal(t, "1a", amounts.StripLeadingZeros("1a"))
	assert.Equal(t, "0", amounts.StripLeadingZeros("0000"))
	assert.Equal(t, "0", amounts.StripLeadingZeros("0"))
}

func TestIsHexString(t *testing.T) {
	assert.True(t, amounts.IsHexString("0x68656c6c6f"))
	assert.True(t, amounts.IsHexString("0x"))
	assert.False(t, amounts.IsHexString("68656c6c6f"))
	assert.False(t, amounts.IsHexString("0xhello"))
	assert.False(t, amounts.IsHexString(""))
}
