// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/hdevalence/ed25519consensus"
	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

// RFC 8032 section 7.1, test 1.
const (
	testSeedHex      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testPublicKeyHex = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	testSigEmptyHex  = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

var oed25519options = &oed25519.Options{
	Verify: oed25519.VerifyOptionsZIP_215,
}

func TestGeneratePrivateKeyFormat(t *testing.T) {
	require := require.New(t)
	priv, err := GeneratePrivateKey()
	require.NoError(err, "Error Generating PrivateKey")
	require.NotEqual(priv, EmptyPrivateKey, "PrivateKey is empty")
	require.Len(priv, PrivateKeyLen, "PrivateKey has incorrect length")
}

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	const numKeysToGenerate int = 10
	pks := [numKeysToGenerate]PrivateKey{}

	for i := 0; i < numKeysToGenerate; i++ {
		priv, err := GeneratePrivateKey()
		pks[i] = priv
		require.NoError(err, "Error Generating Private Key")
	}

	m := make(map[PrivateKey]bool)
	for _, priv := range pks {
		require.False(m[priv], "Duplicate PrivateKey generated")
		m[priv] = true
	}
}

func TestHexToKeyKnownVector(t *testing.T) {
	require := require.New(t)
	priv, err := HexToKey(testSeedHex)
	require.NoError(err)

	pub := priv.PublicKey()
	require.Equal(testPublicKeyHex, hex.EncodeToString(pub[:]))
	require.Equal(testSeedHex, hex.EncodeToString(priv.Seed()))

	sig := Sign(nil, priv)
	require.Equal(testSigEmptyHex, hex.EncodeToString(sig[:]))
}

func TestHexToKeyPrefixed(t *testing.T) {
	require := require.New(t)
	a, err := HexToKey(testSeedHex)
	require.NoError(err)
	b, err := HexToKey("0x" + testSeedHex)
	require.NoError(err)
	require.Equal(a, b)
}

func TestHexToKeyInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", testSeedHex[:62]},
		{"long", testSeedHex + "00"},
		{"expandedKey", testSeedHex + testPublicKeyHex},
		{"notHex", "zz" + testSeedHex[2:]},
		{"oddLength", testSeedHex[1:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			priv, err := HexToKey(tt.input)
			require.ErrorIs(err, ErrInvalidPrivateKey)
			require.Equal(EmptyPrivateKey, priv)
		})
	}
}

func TestPublicKeyFromBytes(t *testing.T) {
	require := require.New(t)

	priv, err := HexToKey(testSeedHex)
	require.NoError(err)
	pub := priv.PublicKey()
	parsed, err := PublicKeyFromBytes(pub[:])
	require.NoError(err)
	require.Equal(pub, parsed)

	_, err = PublicKeyFromBytes(pub[1:])
	require.ErrorIs(err, ErrInvalidPublicKey)
	parsed, err = PublicKeyFromBytes(make([]byte, PublicKeyLen))
	require.ErrorIs(err, ErrInvalidPublicKey)
	require.Equal(EmptyPublicKey, parsed)
}

func TestPublicKeyMatchesStdlib(t *testing.T) {
	require := require.New(t)
	seed := make([]byte, PrivateKeySeedLen)
	_, err := rand.Read(seed)
	require.NoError(err)

	priv, err := PrivateKeyFromSeed(seed)
	require.NoError(err)
	expected := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	pub := priv.PublicKey()
	require.Equal([]byte(expected), pub[:])
}

func TestSignSignatureValid(t *testing.T) {
	require := require.New(t)
	priv, err := HexToKey(testSeedHex)
	require.NoError(err)

	msg := []byte("msg")
	expectedSig := Signature(ed25519.Sign(priv[:], msg))
	require.Equal(expectedSig, Sign(msg, priv), "Signature was incorrect")
}

func TestVerifyValidParams(t *testing.T) {
	require := require.New(t)
	priv, err := GeneratePrivateKey()
	require.NoError(err)
	msg := []byte("msg")
	sig := Sign(msg, priv)
	require.True(Verify(msg, priv.PublicKey(), sig), "Signature was invalid")

	pub := priv.PublicKey()
	require.True(ed25519consensus.Verify(pub[:], msg, sig[:]))
	require.True(oed25519.VerifyWithOptions(pub[:], msg, sig[:], oed25519options))
}

func TestVerifyInvalidParams(t *testing.T) {
	require := require.New(t)
	priv, err := GeneratePrivateKey()
	require.NoError(err)

	msg := []byte("msg")
	difMsg := []byte("diff msg")
	sig := Sign(msg, priv)
	require.False(Verify(difMsg, priv.PublicKey(), sig), "Verify incorrectly verified a message")

	other, err := GeneratePrivateKey()
	require.NoError(err)
	require.False(Verify(msg, other.PublicKey(), sig), "Verify accepted the wrong key")

	sig[0]++
	require.False(Verify(msg, priv.PublicKey(), sig), "Verify accepted a tampered signature")
}

func BenchmarkConsensusVerifySingle(b *testing.B) {
	require := require.New(b)
	b.StopTimer()
	msg := make([]byte, 128)
	_, err := rand.Read(msg)
	require.NoError(err)
	priv, err := GeneratePrivateKey()
	require.NoError(err)
	sig := Sign(msg, priv)
	pub := priv.PublicKey()
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		require.True(Verify(msg, pub, sig), "invalid signature")
	}
}
