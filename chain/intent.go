// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/ava-labs/suimint/crypto"

const IntentLen = 3

type IntentScope uint8

const (
	TransactionDataScope IntentScope = iota
	TransactionEffectsScope
	CheckpointSummaryScope
	PersonalMessageScope
)

type IntentVersion uint8

const IntentV0 IntentVersion = 0

type AppID uint8

const SuiApp AppID = 0

// Intent is prepended to every signed message so a signature over one kind
// of message can never be replayed as a signature over another.
type Intent struct {
	Scope   IntentScope
	Version IntentVersion
	AppID   AppID
}

// TransactionDataIntent is the intent for signing user transactions.
var TransactionDataIntent = Intent{
	Scope:   TransactionDataScope,
	Version: IntentV0,
	AppID:   SuiApp,
}

func (i Intent) Bytes() []byte {
	return []byte{byte(i.Scope), byte(i.Version), byte(i.AppID)}
}

// SigningDigest returns the message that is actually signed:
// BLAKE2b-256(intent | msg).
func SigningDigest(intent Intent, msg []byte) [crypto.DigestLen]byte {
	return crypto.Blake2b256(intent.Bytes(), msg)
}
