package memcopy

import "memscrub/pkg/adler"

type baselineCopier struct {
	name string
}

func NewBaselineCopier() *baselineCopier {
	return &baselineCopier{name: string(Baseline)}
}

func (c *baselineCopier) Copy(dst, src []uint64) (adler.Checksum, error) {
	return adler.Copy(dst, src)
}

func (c *baselineCopier) Name() string {
	return c.name
}

func (c *baselineCopier) NonTemporal() bool {
	return false
}
