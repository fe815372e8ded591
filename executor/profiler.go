package executor

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/named-data/pngmsg/core"
	"github.com/pkg/errors"
)

// Profiler writes pprof profiles of a command run to the files named in the configuration.
type Profiler struct {
	config  *core.Config
	cpuFile *os.File
	block   *pprof.Profile
}

func NewProfiler(config *core.Config) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) Start() (err error) {
	if p.config.Profile.Cpu != "" {
		p.cpuFile, err = os.Create(p.config.Profile.Cpu)
		if err != nil {
			return errors.Wrap(err, "unable to open output file for CPU profile")
		}

		core.LogInfo("Profiler", "Profiling CPU - outputting to ", p.config.Profile.Cpu)
		if err = pprof.StartCPUProfile(p.cpuFile); err != nil {
			p.cpuFile.Close()
			p.cpuFile = nil
			return errors.Wrap(err, "unable to start CPU profile")
		}
	}

	if p.config.Profile.Block != "" {
		core.LogInfo("Profiler", "Profiling blocking operations - outputting to ", p.config.Profile.Block)
		runtime.SetBlockProfileRate(1)
		p.block = pprof.Lookup("block")
	}

	return nil
}

func (p *Profiler) Stop() {
	if p.block != nil {
		blockProfileFile, err := os.Create(p.config.Profile.Block)
		if err != nil {
			core.LogError("Profiler", "Unable to open output file for block profile: ", err)
		} else {
			if err := p.block.WriteTo(blockProfileFile, 0); err != nil {
				core.LogError("Profiler", "Unable to write block profile: ", err)
			}
			blockProfileFile.Close()
		}
		p.block = nil
	}

	if p.config.Profile.Mem != "" {
		memProfileFile, err := os.Create(p.config.Profile.Mem)
		if err != nil {
			core.LogError("Profiler", "Unable to open output file for memory profile: ", err)
		} else {
			core.LogInfo("Profiler", "Profiling memory - outputting to ", p.config.Profile.Mem)
			runtime.GC()
			if err := pprof.WriteHeapProfile(memProfileFile); err != nil {
				core.LogError("Profiler", "Unable to write memory profile: ", err)
			}
			memProfileFile.Close()
		}
	}

	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
}
