package memcopy

import "memscrub/pkg/adler"

type vectorCopier struct {
	name string
}

func NewVectorCopier() *vectorCopier {
	return &vectorCopier{name: string(Vector)}
}

func (c *vectorCopier) Copy(dst, src []uint64) (adler.Checksum, error) {
	return adler.CopyVector(dst, src)
}

func (c *vectorCopier) Name() string {
	return c.name
}

func (c *vectorCopier) NonTemporal() bool {
	// A SIMD port with streaming stores flips this to true; the
	// portable fallback stores through the cache.
	return false
}
