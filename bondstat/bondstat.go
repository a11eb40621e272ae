//Package bondstat accumulates the bond lengths of the carbonyls detected
//during a run, and turns them into simple statistics, a histogram, and,
//if wanted, a PNG plot. It is a much simplified take on goChem's histo
//package, for one-dimensional data only.
package bondstat

import (
	"fmt"
	"math"
	"sort"
	"sync"

	decarb "github.com/rmera/decarbonyl"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Collector accumulates the distances of detected carbonyl pairs. It is safe
//for concurrent use, as a batch run may feed it from several goroutines.
type Collector struct {
	mu sync.Mutex
	co []float64 //C-O distances
	mc []float64 //metal-C distances. NaNs (no-metal detections) are not kept
}

func NewCollector() *Collector {
	return new(Collector)
}

//AddPairs records the distances of the given detected pairs.
func (C *Collector) AddPairs(pairs []*decarb.COPair) {
	C.mu.Lock()
	defer C.mu.Unlock()
	for _, p := range pairs {
		C.co = append(C.co, p.DCO)
		if !math.IsNaN(p.DMC) {
			C.mc = append(C.mc, p.DMC)
		}
	}
}

//N returns how many C-O distances have been collected.
func (C *Collector) N() int {
	C.mu.Lock()
	defer C.mu.Unlock()
	return len(C.co)
}

//COStats returns the mean and standard deviation of the collected C-O
//distances. Both are 0 when nothing has been collected.
func (C *Collector) COStats() (mean, sigma float64) {
	C.mu.Lock()
	defer C.mu.Unlock()
	return meansigma(C.co)
}

//MCStats is COStats for the metal-C distances.
func (C *Collector) MCStats() (mean, sigma float64) {
	C.mu.Lock()
	defer C.mu.Unlock()
	return meansigma(C.mc)
}

func meansigma(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	if len(data) == 1 {
		return data[0], 0
	}
	return stat.Mean(data, nil), stat.StdDev(data, nil)
}

//Histogram bins the collected C-O distances into n equal bins spanning the
//collected range, and returns the counts and the n+1 dividers used.
func (C *Collector) Histogram(n int) (counts, dividers []float64) {
	C.mu.Lock()
	defer C.mu.Unlock()
	if len(C.co) == 0 || n < 1 {
		return nil, nil
	}
	data := make([]float64, len(C.co))
	copy(data, C.co)
	sort.Float64s(data) //stat.Histogram wants its data sorted
	dividers = make([]float64, n+1)
	lo := data[0]
	//stat.Histogram panics on values at or past the last divider, so the
	//top of the range is padded to keep the largest value inside.
	hi := data[len(data)-1] + 0.000001
	floats.Span(dividers, lo, hi)
	counts = stat.Histogram(nil, dividers, data, nil)
	return counts, dividers
}

//SaveHisto writes a PNG histogram of the collected C-O distances to name,
//with the given number of bins.
func (C *Collector) SaveHisto(name string, bins int) error {
	C.mu.Lock()
	vals := make(plotter.Values, len(C.co))
	copy(vals, C.co)
	C.mu.Unlock()
	if len(vals) == 0 {
		return fmt.Errorf("bondstat: nothing collected, no histogram to plot")
	}
	p := plot.New()
	p.Title.Text = "C-O bond lengths"
	p.X.Label.Text = "distance (A)"
	p.Y.Label.Text = "carbonyls"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(4*vg.Inch, 4*vg.Inch, name)
}
