/* ndn-packet - NDN packet wire codec for Go
 *
 * Copyright (C) 2020-2022 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package security_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/named-data/ndn-packet/ndn/security"
	"github.com/stretchr/testify/assert"
)

func TestEcdsaSha256(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)

	signer := security.NewEcdsaSha256Signer(key)
	assert.Equal(t, security.SignatureSha256WithEcdsaType, signer.Type())

	buf := []byte{0x01, 0x02, 0x03, 0x04}
	signature, err := signer.Sign(buf)
	assert.NoError(t, err)

	assert.True(t, signer.Validate(buf, signature))
	assert.False(t, signer.Validate([]byte{0x01, 0x02}, signature))

	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)
	assert.False(t, security.NewEcdsaSha256Signer(otherKey).Validate(buf, signature))

	noKey := security.NewEcdsaSha256Signer(nil)
	_, err = noKey.Sign(buf)
	assert.Error(t, err)
	assert.False(t, noKey.Validate(buf, signature))
}
