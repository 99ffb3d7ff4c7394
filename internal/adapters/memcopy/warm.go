package memcopy

import "memscrub/pkg/adler"

type warmCopier struct {
	name string
}

func NewWarmCopier() *warmCopier {
	return &warmCopier{name: string(Warm)}
}

func (c *warmCopier) Copy(dst, src []uint64) (adler.Checksum, error) {
	return adler.CopyWarm(dst, src)
}

func (c *warmCopier) Name() string {
	return c.name
}

func (c *warmCopier) NonTemporal() bool {
	return false
}
