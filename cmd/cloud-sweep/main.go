// Command cloud-sweep evaluates grids of seeding parameters and reports which
// combinations produce stable cloud coverage. Each parameter set is simulated
// under several seeds; coverage statistics are aggregated across seeds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/SKittan/3DvoxGen/internal/sims/clouds"
)

type paramSet struct {
	pHum    int
	pAct    int
	pExt    int
	overlap float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("p_hum=%d p_act=%d p_ext=%d overlap=%.1f", p.pHum, p.pAct, p.pExt, p.overlap)
}

type sweepResult struct {
	params paramSet

	meanCoverage float64
	stdCoverage  float64
	meanPeak     float64
}

// sweepRecord is the CSV form of one sweep result.
type sweepRecord struct {
	PHum         int     `csv:"p_hum"`
	PAct         int     `csv:"p_act"`
	PExt         int     `csv:"p_ext"`
	Overlap      float64 `csv:"overlap"`
	MeanCoverage float64 `csv:"mean_coverage"`
	StdCoverage  float64 `csv:"std_coverage"`
	MeanPeak     float64 `csv:"mean_peak"`
}

func main() {
	steps := flag.Int("steps", 20, "ticks to simulate per run")
	seeds := flag.Int("seeds", 5, "seeds to evaluate per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 64, "grid width for sweep runs")
	depth := flag.Int("depth", 64, "grid depth for sweep runs")
	height := flag.Int("height", 64, "grid height for sweep runs")
	top := flag.Int("top", 15, "result rows to print")
	out := flag.String("out", "", "optional CSV file for the full result table")
	flag.Parse()

	baseCfg := clouds.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Depth = *depth
	baseCfg.Height = *height
	baseZone := baseCfg.Params.Zones[0]
	baseZone.CenterX = float64(*width) / 2
	baseZone.CenterY = float64(*depth) / 2
	baseZone.CenterZ = float64(*height) / 2

	humOptions := []int{50, 100, 200}
	actOptions := []int{1, 5, 20}
	extOptions := []int{250, 500, 1000}
	overlapOptions := []float64{5, 10, 15}

	var sets []paramSet
	for _, hum := range humOptions {
		for _, act := range actOptions {
			for _, ext := range extOptions {
				for _, overlap := range overlapOptions {
					sets = append(sets, paramSet{pHum: hum, pAct: act, pExt: ext, overlap: overlap})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %d steps)\n",
		len(sets), *workers, *seeds, *steps)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, baseZone, params, *steps, *seeds)
			}
		}()
	}

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].meanCoverage > all[j].meanCoverage
	})

	limit := *top
	if limit > len(all) {
		limit = len(all)
	}
	fmt.Println("\nTop parameter sets by mean coverage:")
	for _, res := range all[:limit] {
		fmt.Printf("  %s  coverage=%.4f±%.4f peak=%.4f\n",
			res.params, res.meanCoverage, res.stdCoverage, res.meanPeak)
	}

	if *out != "" {
		if err := writeResults(*out, all); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
		fmt.Printf("Full table written to %s\n", *out)
	}
}

// runScenario simulates one parameter set under several seeds and aggregates
// final and peak cloud coverage.
func runScenario(baseCfg clouds.Config, baseZone clouds.Zone, params paramSet, steps, seeds int) sweepResult {
	finals := make([]float64, 0, seeds)
	peaks := make([]float64, 0, seeds)

	for seed := 1; seed <= seeds; seed++ {
		cfg := baseCfg
		cfg.Seed = int64(seed)
		zone := baseZone
		zone.PHum = params.pHum
		zone.PAct = params.pAct
		zone.PExt = params.pExt
		zone.Overlap = params.overlap
		cfg.Params = clouds.Params{Zones: []clouds.Zone{zone}}

		world, err := clouds.NewWithConfig(cfg)
		if err != nil {
			log.Fatalf("building world: %v", err)
		}
		world.Reset(0)

		volume := float64(world.Size().Volume())
		peak := 0.0
		for i := 0; i < steps; i++ {
			world.Step()
			coverage := float64(countSet(world.Cloud())) / volume
			if coverage > peak {
				peak = coverage
			}
		}
		finals = append(finals, float64(countSet(world.Cloud()))/volume)
		peaks = append(peaks, peak)
	}

	return sweepResult{
		params:       params,
		meanCoverage: stat.Mean(finals, nil),
		stdCoverage:  stat.StdDev(finals, nil),
		meanPeak:     stat.Mean(peaks, nil),
	}
}

func countSet(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}

func writeResults(path string, all []sweepResult) error {
	records := make([]*sweepRecord, len(all))
	for i, res := range all {
		records[i] = &sweepRecord{
			PHum:         res.params.pHum,
			PAct:         res.params.pAct,
			PExt:         res.params.pExt,
			Overlap:      res.params.overlap,
			MeanCoverage: res.meanCoverage,
			StdCoverage:  res.stdCoverage,
			MeanPeak:     res.meanPeak,
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&records, f)
}
