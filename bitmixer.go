package fsa

// mix64 is the 64-bit finalizer of MurmurHash3.
func mix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

func mix(key int) uint64 {
	return mix64(uint64(key))
}
