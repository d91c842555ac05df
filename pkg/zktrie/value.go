package zktrie

import "github.com/zkrollup/zktrie/pkg/util"

// ValueEncoder is implemented by domain types that can be stored in the
// trie as a slot list with a compression flag.
type ValueEncoder interface {
	EncodeValues() (values []util.Byte32, flag uint32)
}

// ValueDecoder is implemented by domain types that can be restored from a
// slot list.
type ValueDecoder interface {
	DecodeValues(values []util.Byte32) error
}

// UpdateValue stores an encodable value under the given raw key.
func (t *Trie) UpdateValue(key []byte, v ValueEncoder) error {
	values, flag := v.EncodeValues()
	return t.Update(key, values, flag)
}

// GetValue retrieves the slots under the given raw key and decodes them
// into v.
func (t *Trie) GetValue(key []byte, v ValueDecoder) error {
	values, err := t.Get(key)
	if err != nil {
		return err
	}
	return v.DecodeValues(values)
}
