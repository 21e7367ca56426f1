package storeutil

import (
	"github.com/anyproto/any-store/anyenc"

	"github.com/anyproto/any-deck/util/crypto"
)

func NewStringArrayValue(strings []string, arena *anyenc.Arena) *anyenc.Value {
	val := arena.NewArray()
	for idx, str := range strings {
		val.SetArrayItem(idx, arena.NewString(str))
	}
	return val
}

func StringsFromArrayValue(val *anyenc.Value, key string) (res []string) {
	vals := val.GetArray(key)
	res = make([]string, 0, len(vals))
	for _, item := range vals {
		res = append(res, item.GetString())
	}
	return res
}

// NewPubkeyArrayValue stores pubkeys in their wire (hex) form
func NewPubkeyArrayValue(pks []crypto.Pubkey, arena *anyenc.Arena) *anyenc.Value {
	val := arena.NewArray()
	for idx, pk := range pks {
		val.SetArrayItem(idx, arena.NewString(pk.Hex()))
	}
	return val
}

// PubkeysFromArrayValue skips entries that do not parse
func PubkeysFromArrayValue(val *anyenc.Value, key string) (res []crypto.Pubkey) {
	for _, s := range StringsFromArrayValue(val, key) {
		if pk, err := crypto.ParsePubkey(s); err == nil {
			res = append(res, pk)
		}
	}
	return
}
