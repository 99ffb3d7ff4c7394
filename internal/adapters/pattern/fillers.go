package pattern

import "math/rand/v2"

type solidFiller struct {
	name string
	word uint64
}

func (f *solidFiller) Fill(words []uint64, _ uint64) {
	for i := range words {
		words[i] = f.word
	}
}

func (f *solidFiller) Name() string { return f.name }

type checkerboardFiller struct {
	name string
}

func (f *checkerboardFiller) Fill(words []uint64, pass uint64) {
	// Alternate per word, inverting the phase every pass so each cell
	// sees both polarities over consecutive passes.
	phase := pass & 1
	for i := range words {
		if (uint64(i)+phase)&1 == 0 {
			words[i] = 0x5555555555555555
		} else {
			words[i] = 0xaaaaaaaaaaaaaaaa
		}
	}
}

func (f *checkerboardFiller) Name() string { return f.name }

type walkingFiller struct {
	name   string
	invert bool
}

func (f *walkingFiller) Fill(words []uint64, pass uint64) {
	for i := range words {
		w := uint64(1) << ((uint64(i) + pass) & 63)
		if f.invert {
			w = ^w
		}
		words[i] = w
	}
}

func (f *walkingFiller) Name() string { return f.name }

type addressFiller struct {
	name string
	seed uint64
}

func (f *addressFiller) Fill(words []uint64, _ uint64) {
	for i := range words {
		words[i] = uint64(i) ^ f.seed
	}
}

func (f *addressFiller) Name() string { return f.name }

type randomFiller struct {
	name string
	seed uint64
}

func (f *randomFiller) Fill(words []uint64, pass uint64) {
	// One PCG stream per (seed, pass) pair: refilling for the same
	// pass reproduces the data exactly, which is what makes a failing
	// run replayable.
	rng := rand.New(rand.NewPCG(f.seed, pass))
	for i := range words {
		words[i] = rng.Uint64()
	}
}

func (f *randomFiller) Name() string { return f.name }
