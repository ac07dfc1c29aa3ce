package ec

import (
	"math/big"
	"runtime"
	"sync"

	mathutil "github.com/Caqil/ec-core/internal/math"
	"github.com/Caqil/ec-core/pkg/logger"
)

// Term is one (scalar, point) pair of a multiscalar multiplication.
type Term[C Curve] struct {
	Scalar Scalar[C]
	Point  Point[C]
}

// MultiScalarMul computes the sum of Scalar_i * Point_i over all terms using
// the bucket (Pippenger) method: each scalar is split into fixed-width
// digits, points sharing a digit value are accumulated into a common bucket,
// and the shared doubling work is amortized across every term. For large
// batches this approaches the cost of a single scalar multiplication plus a
// linear number of cheap additions, instead of len(terms) independent
// multiplications.
//
// An empty input yields the identity. Terms with a zero scalar contribute
// nothing to the result but are processed exactly like every other term;
// they are never skipped, so the work performed does not depend on which
// scalars happen to be zero.
//
// Digit positions are independent, so for large batches they are evaluated
// by a fixed-size worker pool. Parallel and sequential evaluation assemble
// buckets in the same fixed order and produce identical results.
func MultiScalarMul[C Curve](terms []Term[C]) Point[C] {
	m := len(terms)
	if m == 0 {
		return Identity[C]()
	}

	params := curveOf[C]().Params()
	w := mathutil.WindowWidth(m)
	numWindows := mathutil.WindowCount(params.ScalarSize()*8, w)

	digits := make([][]uint32, m)
	for i := range terms {
		digits[i] = mathutil.Digits(terms[i].Scalar.Bytes(), w, numWindows)
	}

	workers := msmWorkers(m, numWindows)
	logger.DebugEvent().
		Str("curve", params.Name).
		Int("terms", m).
		Int("window_bits", w).
		Int("workers", workers).
		Msg("multiscalar multiplication")

	if params.A != nil {
		if p, ok := msmJacobian[C](terms, digits, w, numWindows, workers); ok {
			return p
		}
	}
	return msmGeneric[C](terms, digits, w, numWindows, workers)
}

// msmJacobian is the short-Weierstrass fast path: buckets and digit-position
// sums accumulate in Jacobian coordinates, deferring field inversions, and
// all per-position sums are normalized back to affine with one batched
// inversion before the final combination.
func msmJacobian[C Curve](terms []Term[C], digits [][]uint32, w, numWindows, workers int) (Point[C], bool) {
	params := curveOf[C]().Params()
	wc := mathutil.NewWeierstrass(params.P, params.A)

	xs := make([]*big.Int, len(terms))
	ys := make([]*big.Int, len(terms))
	for i := range terms {
		xs[i], ys[i] = terms[i].Point.coords()
	}

	windowSums := make([]mathutil.JacobianPoint, numWindows)
	runWindows(numWindows, workers, func(j int) {
		buckets := make([]mathutil.JacobianPoint, 1<<uint(w))
		for b := range buckets {
			buckets[b] = wc.Infinity()
		}

		// Bucket zero receives the zero digits so that every term does
		// identical work; it never enters the weighted sum below.
		for i := range terms {
			d := digits[i][j]
			buckets[d] = wc.Add(buckets[d], wc.FromAffine(xs[i], ys[i]))
		}

		// sum_{b>=1} b * bucket[b] via a weighted running sum from the
		// highest bucket down.
		running := wc.Infinity()
		sum := wc.Infinity()
		for b := len(buckets) - 1; b >= 1; b-- {
			running = wc.Add(running, buckets[b])
			sum = wc.Add(sum, running)
		}
		windowSums[j] = sum
	})

	sumX, sumY, err := wc.ToAffineBatch(windowSums)
	if err != nil {
		// Z coordinates of non-infinite sums are invertible for a prime
		// field modulus; fall back to the contract-op path regardless.
		return Point[C]{}, false
	}

	// Combine digit positions from most significant down: w doublings
	// between positions, then one mixed addition.
	result := wc.Infinity()
	for j := numWindows - 1; j >= 0; j-- {
		if j != numWindows-1 {
			for k := 0; k < w; k++ {
				result = wc.Double(result)
			}
		}
		result = wc.Add(result, wc.FromAffine(sumX[j], sumY[j]))
	}

	x, y := wc.ToAffine(result)
	return Point[C]{x: x, y: y}, true
}

// msmGeneric runs the same bucket algorithm through the curve contract's
// point operations. It is the only path for curves without short
// Weierstrass coefficients (Edwards curves).
func msmGeneric[C Curve](terms []Term[C], digits [][]uint32, w, numWindows, workers int) Point[C] {
	windowSums := make([]Point[C], numWindows)
	runWindows(numWindows, workers, func(j int) {
		buckets := make([]Point[C], 1<<uint(w))
		for b := range buckets {
			buckets[b] = Identity[C]()
		}

		for i := range terms {
			d := digits[i][j]
			buckets[d] = buckets[d].Add(terms[i].Point)
		}

		running := Identity[C]()
		sum := Identity[C]()
		for b := len(buckets) - 1; b >= 1; b-- {
			running = running.Add(buckets[b])
			sum = sum.Add(running)
		}
		windowSums[j] = sum
	})

	result := Identity[C]()
	for j := numWindows - 1; j >= 0; j-- {
		if j != numWindows-1 {
			for k := 0; k < w; k++ {
				result = result.Double()
			}
		}
		result = result.Add(windowSums[j])
	}
	return result
}

// msmWorkers picks the worker pool size. Small batches stay sequential;
// the pool never exceeds the number of digit positions.
func msmWorkers(m, numWindows int) int {
	if m < 64 {
		return 1
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > numWindows {
		workers = numWindows
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// runWindows processes every digit position, either inline or on a worker
// pool fed from a task channel. Each position writes only its own slot, so
// no locking is needed.
func runWindows(numWindows, workers int, process func(j int)) {
	if workers <= 1 {
		for j := 0; j < numWindows; j++ {
			process(j)
		}
		return
	}

	tasks := make(chan int, numWindows)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range tasks {
				process(j)
			}
		}()
	}

	for j := 0; j < numWindows; j++ {
		tasks <- j
	}
	close(tasks)

	wg.Wait()
}
