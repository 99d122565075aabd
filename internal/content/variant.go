package content

import (
	"encoding/binary"
	"hash/fnv"
)

// Seed derives the variation seed for a stain/material pair. It depends only on the two ids,
// so a given pair renders the same phrasing on every host and every run.
func Seed(stainID, materialID uint) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(stainID))
	binary.BigEndian.PutUint64(buf[8:], uint64(materialID))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// pick maps (seed, salt) onto [0, n). Distinct salts keep unrelated choices from moving in lockstep.
func pick(seed uint64, salt string, n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(salt))
	return int(h.Sum64() % uint64(n))
}
