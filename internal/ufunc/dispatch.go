package ufunc

// execute drives one invocation of a matched variant.
//
// The call is serviced by the vectorized form only if every argument
// passes its alignment test and every declared block size agrees with
// the variant-wide maximum. There is no tail path: a call that is not
// fully aligned sends all sequences through the fallback form, which
// keeps the two paths numerically interchangeable at the cost of
// throughput on slightly ragged inputs.
func execute(v *Variant, c *Call) {
	blocksize := 0
	for _, a := range v.Args {
		if a.Block > blocksize {
			blocksize = a.Block
		}
	}

	aligned := true
	for i, a := range v.Args {
		if a.Block != 0 && a.Block != blocksize {
			aligned = false
			break
		}
		if !a.isAligned(c.Bufs[i], c.Seqs) {
			aligned = false
			break
		}
	}

	if blocksize == 0 {
		blocksize = 1
	}

	if aligned {
		for seq := 0; seq < c.Seqs; seq += blocksize {
			v.Aligned(c, seq, blocksize)
		}
		return
	}
	for seq := 0; seq < c.Seqs; seq++ {
		v.Fallback(c, seq, 1)
	}
}
