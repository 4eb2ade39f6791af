// Package selfcheck revalidates the frozen power-of-ten tables at the
// caller's request: every direct entry is recomputed from scratch with
// math/big, and the compressed binary64 table is checked to reconstruct
// the direct entries bit for bit. Conversions never run these checks;
// they exist for tests and for operators who want a start-up audit of a
// build on an unusual platform.
package selfcheck

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"

	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/logging"
	"github.com/agbru/fpconv/internal/parallel"
	"github.com/agbru/fpconv/internal/wideint"
)

// referencePow10 computes the cache entry for 10^k from scratch: the
// ceiling of 10^k scaled so its leading bit sits at the top of a
// cacheBits-wide word.
func referencePow10(k, cacheBits int) *big.Int {
	num := big.NewInt(1)
	den := big.NewInt(1)
	ten := big.NewInt(10)
	if k >= 0 {
		num.Exp(ten, big.NewInt(int64(k)), nil)
	} else {
		den.Exp(ten, big.NewInt(int64(-k)), nil)
	}

	// floor(log2(10^k)) from the bit lengths, corrected by one exact
	// comparison.
	floorLog2 := num.BitLen() - den.BitLen()
	var lhs, rhs big.Int
	if floorLog2 >= 0 {
		lhs.Set(num)
		rhs.Lsh(den, uint(floorLog2))
	} else {
		lhs.Lsh(num, uint(-floorLog2))
		rhs.Set(den)
	}
	if lhs.Cmp(&rhs) < 0 {
		floorLog2--
	}

	shift := cacheBits - 1 - floorLog2
	if shift >= 0 {
		num.Lsh(num, uint(shift))
	} else {
		den.Lsh(den, uint(-shift))
	}

	// Ceiling division.
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// Verify recomputes every table entry and cross-checks the compressed
// lookup path. It returns the first discrepancy found, or nil.
func Verify(log logging.Logger) error {
	if log == nil {
		log = logging.NewDefaultLogger()
	}

	log.Info("verifying binary32 power-of-ten table",
		logging.Int("entries", cache.MaxK32-cache.MinK32+1))
	for k := cache.MinK32; k <= cache.MaxK32; k++ {
		want := referencePow10(k, 64)
		if got := cache.Pow10_32(k); got != want.Uint64() {
			return fmt.Errorf("selfcheck: binary32 entry for 10^%d is %#x, recomputed %#x",
				k, got, want.Uint64())
		}
	}

	log.Info("verifying binary64 power-of-ten table",
		logging.Int("entries", cache.MaxK64-cache.MinK64+1))
	if err := verify64Parallel(); err != nil {
		return err
	}

	log.Info("power-of-ten tables verified")
	return nil
}

// verify64Parallel splits the binary64 range across workers; each entry
// is recomputed with math/big and the compact reconstruction is compared
// against the direct table.
func verify64Parallel() error {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	var ec parallel.ErrorCollector
	var wg sync.WaitGroup
	total := cache.MaxK64 - cache.MinK64 + 1
	chunk := (total + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := cache.MinK64 + w*chunk
		hi := lo + chunk - 1
		if hi > cache.MaxK64 {
			hi = cache.MaxK64
		}
		if lo > hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			ec.SetError(verify64Range(lo, hi))
		}(lo, hi)
	}
	wg.Wait()
	return ec.Err()
}

func verify64Range(lo, hi int) error {
	for k := lo; k <= hi; k++ {
		direct := cache.Pow10_64(k)
		want := referencePow10(k, 128)
		if toUint128(want) != direct {
			return fmt.Errorf("selfcheck: binary64 entry for 10^%d differs from the recomputed value", k)
		}
		if compact := cache.Pow10_64Compact(k); compact != direct {
			return fmt.Errorf("selfcheck: compact reconstruction of 10^%d is %#x:%#x, direct entry %#x:%#x",
				k, compact.Hi, compact.Lo, direct.Hi, direct.Lo)
		}
	}
	return nil
}

func toUint128(v *big.Int) wideint.Uint128 {
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return wideint.Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}
}
